// Package notification sends transactional emails for the application.
//
// The package resolves the operator-selected delivery provider into concrete
// SMTP credentials, renders the message from an embedded template pair, and
// dispatches it. Every failure mode is contained: SendPasswordResetEmail
// always returns a Result value, never an error, so callers treat "email not
// sent" as data rather than an exceptional condition.
//
//	cfg := notification.LoadFromEnv()
//	svc := notification.New(cfg, notification.WithLogger(log))
//
//	res := svc.SendPasswordResetEmail(ctx, "user@example.com", tempPassword, "Alice")
//	if !res.Success {
//		// res.Error explains why; nothing was raised.
//	}
//
// Provider selection is driven by Config.EmailProvider. The gmail, sendgrid
// and resend providers use fixed SMTP submission endpoints and only need
// their credentials configured; the generic smtp provider takes the full
// host/port/user/password/secure set. A provider with any required field
// missing is treated as not configured as a whole and no send is attempted.
package notification
