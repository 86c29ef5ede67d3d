// Package utils provides helpers shared by the verification server and the
// home client: JSON response writing, the resty HTTP client, registration
// token signing and validation, GUID hashing and ID generation.
package utils
