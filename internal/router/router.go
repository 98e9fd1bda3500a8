package router

import (
	"net/http"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"brigade/internal/config"
	"brigade/internal/handler"
)

// multipartBodyLimit caps image uploads at the transport level; the
// business cap comes from the upload options.
const multipartBodyLimit = "15M"

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	vacancyHandler *handler.VacancyHandler,
	donationHandler *handler.DonationHandler,
	reportHandler *handler.ReportHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded images are served straight from the web root.
	e.Static("/uploads", filepath.Join(cfg.WebRoot, "uploads"))

	api := e.Group("/api")

	// Public routes
	api.POST("/Auth/login", authHandler.Login)
	api.POST("/Auth/register", authHandler.Register)

	vacancies := api.Group("/Vacancy")
	vacancies.GET("/getAll", vacancyHandler.GetAll)
	vacancies.POST("/create", vacancyHandler.Create)
	vacancies.PUT("/update", vacancyHandler.Update)
	vacancies.DELETE("/delete/:id", vacancyHandler.Delete)

	donations := api.Group("/Donations")
	donations.GET("/getAll", donationHandler.GetAll)
	donations.POST("/create", donationHandler.Create)
	donations.PUT("/update", donationHandler.Update)
	donations.DELETE("/delete/:id", donationHandler.Delete)
	donations.POST("/:id/image", donationHandler.UploadImage, middleware.BodyLimit(multipartBodyLimit))
	donations.DELETE("/:id/image", donationHandler.DeleteImage)
	donations.PATCH("/:id/completeDonation", donationHandler.CompleteDonation)
	donations.POST("/:id/createReport", donationHandler.CreateReport)
	donations.GET("/getReportsByDonationId/:id", donationHandler.ReportsByDonation)

	reports := api.Group("/Reports")
	reports.GET("/getAll", reportHandler.GetAll)
	reports.POST("/create", reportHandler.Create)
	reports.PUT("/update", reportHandler.Update)
	reports.DELETE("/delete/:id", reportHandler.Delete)
	reports.POST("/:id/image", reportHandler.UploadImage, middleware.BodyLimit(multipartBodyLimit))
	reports.DELETE("/:id/image", reportHandler.DeleteImage)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/Auth/me", func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, _ := token.Claims.(jwt.MapClaims)
		return c.JSON(http.StatusOK, echo.Map{"token_claims": claims})
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
