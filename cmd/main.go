// Package main is the entry point for the label-service application.
//
// @title           Label Service API
// @version         1.0.0
// @description     Splits received quantities into labeled lots with unique serial numbers.
//
//	A print workflow reserves serial counters per record, lets the operator
//	adjust label quantities and submits a reconciled print batch.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/label-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Operator token: "Bearer <jwt>". Its subject is recorded as submitted_by.
//
// @tag.name        Allocations
// @tag.description Stateless allocation preview and counter lookup
//
// @tag.name        Workflows
// @tag.description Print workflow commands
//
// @tag.name        Print Batches
// @tag.description Submitted print batches
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/guttosm/label-service/docs" // swagger docs
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
