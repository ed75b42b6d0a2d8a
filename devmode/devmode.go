// Package devmode holds the settings shared by clients that talk to a
// development backend exposed through an ngrok tunnel.
package devmode

// RelayBypassHeader makes the ngrok edge skip its browser warning page and
// forward the request straight to the backend. It has no effect on a
// backend that is not behind the tunnel.
const RelayBypassHeader = "ngrok-skip-browser-warning"

// RelayBypassValue is the value sent with RelayBypassHeader.
const RelayBypassValue = "true"
