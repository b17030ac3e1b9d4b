package swagger

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func Handler() http.Handler {
	// Swagger UI pointed at the served OpenAPI document
	return httpSwagger.Handler(
		httpSwagger.URL("/openapi.yml"),
	)
}
