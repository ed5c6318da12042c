// Package smtp delivers mail through an SMTP server using a shared
// connection pool from github.com/jordan-wright/email.
//
// The pool is created once at startup and must be closed on shutdown:
//
//	sender, err := smtp.New(smtp.Config{
//		Host:     "smtp.gmail.com",
//		Port:     587,
//		Username: "noreply@cutline.app",
//		Password: os.Getenv("SMTP_PASSWORD"),
//		PoolSize: 4,
//	})
//	if err != nil {
//		return err
//	}
//	defer sender.Close()
//
// Tags are not supported by SMTP and are ignored.
package smtp
