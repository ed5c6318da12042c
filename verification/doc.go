// Package verification sends one-time verification codes by email.
//
// A Dispatcher turns a Request{Email, Code} into exactly one message:
//
//	Subject: Your CutLine Verification Code
//
//	Your CutLine verification code is: 483921
//	This code will expire in 5 minutes.
//
// The code is delivered verbatim. Nothing here generates, stores or expires
// codes; the five minutes are a promise made by whoever issued the code.
// Recipients are not validated either: an empty or malformed address is
// handed to the mail provider, which decides.
//
// Any delivery failure is reported as ErrDeliveryFailed. The cause is logged
// and never returned to the caller.
//
// Handler exposes the dispatcher as the callable endpoint
// POST /sendVerificationCode.
package verification
