package badger

import "time"

// HeaderAppID identifies the Badger application on every request
const HeaderAppID = "X-Badger-App-Id"

// RequestTimeout bounds every vendor API call
const RequestTimeout = 10 * time.Second
