// Package forms defines the submission payloads accepted by the public
// website and the label tables that translate their enum values into the
// human-readable strings used in notification emails.
package forms
