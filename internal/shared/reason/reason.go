// Package reason lists the application reason codes returned to API clients.
package reason

import "github.com/shandysiswandi/storefront/internal/pkg/goerror"

var (
	// Common
	RequiredField = goerror.Reason{ID: "COM_02", Message: "The field(s) are/is required.", Type: goerror.TypeValidation, Code: goerror.CodeInvalidInput}
	Unauthorized  = goerror.Reason{ID: "AUT_02", Message: "Access Unauthorized", Type: goerror.TypeBusiness, Code: goerror.CodeUnauthorized}
	Forbidden     = goerror.Reason{ID: "AUT_03", Message: "Account not allowed", Type: goerror.TypeBusiness, Code: goerror.CodeForbidden}

	// Customer
	InvalidCredential = goerror.Reason{ID: "USR_01", Message: "Email or Password is invalid.", Type: goerror.TypeBusiness, Code: goerror.CodeUnauthorized}
	EmailExists       = goerror.Reason{ID: "USR_04", Message: "The email already exists.", Type: goerror.TypeBusiness, Code: goerror.CodeConflict}
	InvalidCreditCard = goerror.Reason{ID: "USR_08", Message: "This is an invalid Credit Card.", Type: goerror.TypeValidation, Code: goerror.CodeInvalidInput}
	CustomerNotFound  = goerror.Reason{ID: "USR_10", Message: "The customer does not exist.", Type: goerror.TypeBusiness, Code: goerror.CodeNotFound}
	InvalidSession    = goerror.Reason{ID: "USR_11", Message: "Invalid or expired refresh token.", Type: goerror.TypeBusiness, Code: goerror.CodeUnauthorized}
	InvalidSocial     = goerror.Reason{ID: "USR_12", Message: "Invalid token", Type: goerror.TypeBusiness, Code: goerror.CodeInvalidFormat}

	// Catalog
	CategoryNotFound     = goerror.Reason{ID: "CAT_01", Message: "Don't exist category with this ID.", Type: goerror.TypeBusiness, Code: goerror.CodeNotFound}
	DepartmentNotFound   = goerror.Reason{ID: "DEP_01", Message: "Don't exist department with this ID.", Type: goerror.TypeBusiness, Code: goerror.CodeNotFound}
	DepartmentNoCategory = goerror.Reason{ID: "DEP_02", Message: "Don't exist categories for this department.", Type: goerror.TypeBusiness, Code: goerror.CodeNotFound}
	ProductNotFound      = goerror.Reason{ID: "PRO_01", Message: "Don't exist product with this ID.", Type: goerror.TypeBusiness, Code: goerror.CodeNotFound}
	AttributeNoValue     = goerror.Reason{ID: "ATTR_00", Message: "Don't exist values for this attribute.", Type: goerror.TypeBusiness, Code: goerror.CodeNotFound}
	ProductNoAttribute   = goerror.Reason{ID: "ATTR_01", Message: "Don't exist attributes for this product.", Type: goerror.TypeBusiness, Code: goerror.CodeNotFound}
	AttributeNotFound    = goerror.Reason{ID: "ATTR_02", Message: "Don't exist attribute with this ID.", Type: goerror.TypeBusiness, Code: goerror.CodeNotFound}
	ReviewRequired       = goerror.Reason{ID: "REV_01", Message: "Review text and rating are required.", Type: goerror.TypeValidation, Code: goerror.CodeInvalidInput}

	// Order
	OrderNotFound    = goerror.Reason{ID: "ORD_01", Message: "Don't exist order with this ID.", Type: goerror.TypeBusiness, Code: goerror.CodeNotFound}
	OrderDuplicate   = goerror.Reason{ID: "ORD_02", Message: "Order with this idempotency key was already submitted.", Type: goerror.TypeBusiness, Code: goerror.CodeConflict}
	CartEmpty        = goerror.Reason{ID: "CRT_01", Message: "The cart is empty or does not exist.", Type: goerror.TypeBusiness, Code: goerror.CodeInvalidInput}
	ShippingNotFound = goerror.Reason{ID: "SHP_01", Message: "Don't exist shipping with this ID.", Type: goerror.TypeBusiness, Code: goerror.CodeNotFound}
	TaxNotFound      = goerror.Reason{ID: "TAX_01", Message: "Don't exist tax with this ID.", Type: goerror.TypeBusiness, Code: goerror.CodeNotFound}
)
