// Package mail sends transactional email (welcome and order confirmation
// messages) through a provider independent Mail interface.
package mail
