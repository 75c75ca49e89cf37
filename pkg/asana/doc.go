// Package asana is a typed client for the Asana REST API.
//
// Every method sends one request and returns the envelope's data field:
//
//	c, err := asana.New(asana.Config{APIKey: pat, AuthMode: asana.AuthBasic})
//	if err != nil {
//		log.Fatal(err)
//	}
//	ws, err := c.ListWorkspaces(ctx)
//
// Errors are one of *ValidationError (bad arguments, nothing was sent),
// *APIError (non-2xx response), *DecodeError (unreadable 2xx body), or the
// transport/context error untouched. Handlers registered with OnError see
// every *APIError before it is returned.
//
// There is no retry and no pagination: list methods return the first page.
package asana
