// Package notification composes and dispatches the emails triggered by
// website form submissions: an operator notification for every variant and a
// submitter confirmation for all but employment applications.
//
// Each email is a single markdown template; the plain-text body is the
// executed markdown and the HTML body is its converted form in a shared
// layout, so the two renderings carry the same content.
package notification
