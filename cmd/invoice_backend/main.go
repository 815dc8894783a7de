package main

// @title Invoice Management API
// @version 1.0
// @description Multi-tenant invoicing backend: invoices, payments, PDF export and rate lookups.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	Execute()
}
