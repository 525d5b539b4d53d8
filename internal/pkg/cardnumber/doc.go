// Package cardnumber checks the format of payment card numbers before they
// are stored on a customer profile.
//
// It does not run a checksum or issuer lookup. A number is accepted when it
// has one of the two supported layouts and contains no run of four or more
// identical consecutive digits.
package cardnumber
