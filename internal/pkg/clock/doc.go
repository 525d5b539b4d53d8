// Package clock abstracts the current time so expiry logic can be tested.
package clock
