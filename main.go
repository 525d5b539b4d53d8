package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/storefront/internal/app"
)

// @title           Storefront API
// @version         1.0
// @description     Storefront exposes customer, catalog and order APIs for an online shop.
// @contact.name    Storefront Support
// @contact.email   support@storefront.example.com
// @license.name    MIT
// @license.url     https://mit-license.org/
// @server          http://localhost:8080
// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT.
// @securityDefinitions.apikey  UserKey
// @in header
// @name USER-KEY
// @description Access token, with or without the "Bearer" prefix.
func main() {
	application := app.New()
	wait := application.Start()
	<-wait

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx)
}
