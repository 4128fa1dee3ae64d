// Package evaluation implements the case-evaluation contact form: field
// validation, the submission lifecycle, and forwarding accepted requests to
// the firm's intake endpoint as JSON.
//
// The six form fields, their labels, and their formats come from the embedded
// OpenAPI intake document rather than from handler code; the handler, the
// renderer, and the validator all read the same model. Submission outcomes
// surface through the injected notification center and feedback port, never
// through direct host coupling.
package evaluation
