// Package callable implements the HTTPS callable function wire protocol.
//
// A callable function receives a POST request whose JSON body wraps the
// caller's payload in a "data" field, and replies with either a "result"
// or an "error" envelope:
//
//	--> {"data": {"email": "user@example.com", "code": "483921"}}
//	<-- {"result": {"success": true}}
//	<-- {"error": {"status": "INTERNAL", "message": "Failed to send email"}}
//
// Errors carry one of a fixed set of kinds (see Code). The kind selects both
// the canonical status string written to the wire and the HTTP status code.
// Any error that is not an *Error is reported as internal so that the cause
// never reaches the caller.
//
// # Usage
//
//	func handle(w http.ResponseWriter, r *http.Request) {
//		var req Payload
//		if err := callable.Decode(r, &req); err != nil {
//			_ = callable.WriteError(w, err)
//			return
//		}
//		res, err := doWork(r.Context(), req)
//		if err != nil {
//			_ = callable.WriteError(w, err)
//			return
//		}
//		_ = callable.WriteResult(w, res)
//	}
package callable
