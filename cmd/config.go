package cmd

import "time"

// Config carries everything the composition root needs to wire the app.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	RedisAddr  string

	// StrictTransitions makes the lifecycle handlers reject transitions
	// the state machine does not allow instead of applying them anyway.
	StrictTransitions bool

	// StaleParcelAfter is how long a parcel may stay awaited before the
	// morning sweep alerts the administrators.
	StaleParcelAfter time.Duration

	// NotificationRetention is how long read notifications are kept before
	// the nightly cleanup deletes them.
	NotificationRetention time.Duration
}
