// Package docs holds the OpenAPI document served at /swagger/doc.json.
// Regenerate it with `swag init --v3.1` after changing handler annotations.
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.1.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}",
        "contact": {
            "name": "Storefront Support",
            "email": "support@storefront.example.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://mit-license.org/"
        }
    },
    "servers": [
        {"url": "http://localhost:8080"}
    ],
    "components": {
        "securitySchemes": {
            "BearerAuth": {
                "type": "apiKey",
                "in": "header",
                "name": "Authorization",
                "description": "Type \"Bearer\" followed by a space and JWT."
            },
            "UserKey": {
                "type": "apiKey",
                "in": "header",
                "name": "USER-KEY",
                "description": "Access token, with or without the \"Bearer\" prefix."
            }
        }
    },
    "paths": {}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Title:            "Storefront API",
	Description:      "Storefront exposes customer, catalog and order APIs for an online shop.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
