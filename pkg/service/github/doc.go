// Package github is a small typed client for the parts of the GitHub REST
// and GraphQL APIs that orgdesk uses: organization members, invitations,
// audit log, Copilot billing and plan information.
//
// Authentication is either a personal access token or a GitHub App
// installation. Pagination follows RFC 5988 Link headers. Rate limit
// headers are recorded but the client never waits or retries: a rate
// limited call fails with an *APIError like any other.
package github
