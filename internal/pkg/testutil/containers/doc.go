// Package containers starts throwaway backing services for integration tests.
//
// Everything here is compiled only with the integration build tag and needs a
// reachable docker daemon.
package containers
