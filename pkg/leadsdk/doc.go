/*
Package leadsdk is a Go client for the leads API.

A Client covers the public endpoints (form submissions, configuration and
health) and opens admin sessions:

	client := leadsdk.NewClient("https://leads.example.com")

	sim, err := client.SubmitSimulation(ctx, leadsdk.SimulationRequest{
		Name:              "Ana Souza",
		Email:             "ana@example.com",
		ConsortiumType:    "vehicle",
		CreditAmountCents: 8_000_000,
		TermMonths:        60,
	})

	session, err := client.Login(ctx, "admin", password)

A Session carries the bearer token returned by login:

	page, err := session.ListSimulations(ctx, leadsdk.ListOptions{Limit: 20})
	err = session.Logout(ctx)

Tokens are not refreshable. Once a session's expiry passes its methods return
ErrSessionExpired; log in again.

# Errors

Every non-2xx response is returned as *APIError. Compare against the
predefined values with errors.Is:

	if errors.Is(err, leadsdk.ErrInvalidCredentials) { ... }

or inspect Code and Details directly for validation failures.
*/
package leadsdk
