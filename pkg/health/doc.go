// Package health provides HTTP handlers for liveness and readiness probes.
//
// [LivenessHandler] always answers OK while the process is running.
// [ReadinessHandler] runs a set of named [Checks] in parallel under a shared
// deadline and answers 503 when any of them fails.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "mail": health.FromChecker(sender),
//	}))
//
// Responses are plain text ("OK" or "Service Unavailable") unless the client
// asks for JSON with ?format=json or an Accept: application/json header:
//
//	{"status":"unhealthy","checks":{"mail":{"status":"unhealthy","error":"..."}}}
package health
