// Package toolsvc is the HTTP client for the remote tool service.
//
// Every tool that is not computed locally is one POST (or, for UUIDs, one
// GET) under the service's /api prefix. Payloads travel either as a JSON body
// or as query parameters, depending on the endpoint. Successful responses are
// returned raw so the operation table can interpret them; failures are
// classified into RemoteError (the service answered with a non-2xx status,
// usually with a {"detail": ...} body) and TransportError (the service could
// not be reached).
package toolsvc
