// File: utils/constants.go
package utils

import "time"

// WizardSessionPrefix is the Redis key prefix for wizard sessions.
const WizardSessionPrefix = "wizard:"

// WizardSessionTTL bounds the lifetime of an in-flight booking wizard.
const WizardSessionTTL = 30 * time.Minute

// AuthSessionTTL is the time-to-live for signed-in session entries.
const AuthSessionTTL = 24 * time.Hour
