// Package mailer renders markdown email templates into HTML and plain-text
// bodies and delivers them through a pluggable Sender. Templates carry YAML
// frontmatter for subjects; the plain-text body is the executed markdown, so
// both renderings always agree on content.
package mailer
