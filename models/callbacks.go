package models

// ResponseHandler receives one decoded server frame.
type ResponseHandler func(Response)

// ResponseCallbacks is the success/error/finally triple accepted by the API
// adapter. Any of the fields may be nil.
type ResponseCallbacks struct {
	Success func(Response)
	Error   func(Response)
	Finally func(Response)
}

// ChangeHandlers is like [ResponseCallbacks] but success and error also get
// the changes the response applied to the local cache.
type ChangeHandlers struct {
	Success func(Response, Changes)
	Error   func(Response, Changes)
	Finally func(Response)
}
