package main

import (
	_ "agency_estimator/docs"
	"agency_estimator/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Agency Estimator API
// @version         1.0
// @description     Service catalog, price estimates, wizard sessions and consultation hand-off.

// @contact.name   Estimator Team
// @contact.email  dev@agency.example

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
