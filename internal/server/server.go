package server

import (
	"net/http"

	"sellegate-backend/internal/handler"
	appmiddleware "sellegate-backend/internal/middleware"
	"sellegate-backend/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo              *echo.Echo
	authMiddleware    echo.MiddlewareFunc
	authHandler       *handler.AuthHandler
	itemHandler       *handler.ItemHandler
	evaluationHandler *handler.EvaluationHandler
	evaluatorHandler  *handler.EvaluatorHandler
	cartHandler       *handler.CartHandler
	ratingHandler     *handler.RatingHandler
}

func NewServer(
	authService service.AuthService,
	itemService service.ItemService,
	evaluationService service.EvaluationService,
	evaluatorService service.EvaluatorService,
	cartService service.CartService,
	ratingService service.RatingService,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = NewValidator()
	e.HTTPErrorHandler = ErrorHandler

	s := &Server{
		echo:              e,
		authMiddleware:    appmiddleware.TokenAuth(authService),
		authHandler:       handler.NewAuthHandler(authService),
		itemHandler:       handler.NewItemHandler(itemService),
		evaluationHandler: handler.NewEvaluationHandler(evaluationService),
		evaluatorHandler:  handler.NewEvaluatorHandler(evaluatorService),
		cartHandler:       handler.NewCartHandler(cartService),
		ratingHandler:     handler.NewRatingHandler(ratingService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- auth --------
	auth := s.echo.Group("/auth")
	auth.POST("/register/", s.authHandler.Register)
	auth.POST("/login/", s.authHandler.Login)
	auth.POST("/logout/", s.authHandler.Logout, s.authMiddleware)
	auth.GET("/me/", s.authHandler.Me, s.authMiddleware)

	// -------- catalog / purchase --------
	items := s.echo.Group("/items")
	items.GET("/", s.itemHandler.GetAll)
	items.GET("/explore/", s.itemHandler.Explore, s.authMiddleware)
	items.GET("/my-products/", s.itemHandler.MyProducts, s.authMiddleware)
	items.GET("/my-sold-items/", s.itemHandler.MySoldItems, s.authMiddleware)
	items.GET("/my-payments/", s.itemHandler.MyPayments, s.authMiddleware)
	items.GET("/:id/", s.itemHandler.Get)
	items.POST("/post-item/", s.itemHandler.PostItem, s.authMiddleware)
	items.PATCH("/update-item/:id/", s.itemHandler.UpdateItem, s.authMiddleware)
	items.DELETE("/delete-item/:id/", s.itemHandler.DeleteItem, s.authMiddleware)
	items.POST("/buy/:id/", s.itemHandler.Buy, s.authMiddleware)

	// -------- cart --------
	cart := s.echo.Group("/cart", s.authMiddleware)
	cart.GET("/", s.cartHandler.Get)
	cart.POST("/add/", s.cartHandler.Add)
	cart.POST("/remove/", s.cartHandler.Remove)

	// -------- ratings --------
	ratings := s.echo.Group("/rating_management/ratings")
	ratings.POST("/evaluator/", s.ratingHandler.RateEvaluator, s.authMiddleware)
	ratings.POST("/seller/", s.ratingHandler.RateSeller, s.authMiddleware)
	ratings.GET("/evaluator/:id/", s.ratingHandler.EvaluatorRatings)
	ratings.GET("/seller/:id/", s.ratingHandler.SellerRatings)

	// -------- evaluation workflow --------
	api := s.echo.Group("/api")

	evaluation := api.Group("/evaluation", s.authMiddleware)
	evaluation.POST("/new/", s.evaluationHandler.New)
	evaluation.GET("/my-evaluations/", s.evaluationHandler.MyEvaluations)
	evaluation.GET("/items-to-evaluate/", s.evaluationHandler.ItemsToEvaluate)
	evaluation.GET("/item/:id/", s.evaluationHandler.ItemEvaluations)
	evaluation.PATCH("/:id/accept/", s.evaluationHandler.Accept)
	evaluation.PATCH("/:id/reject/", s.evaluationHandler.Reject)

	evaluator := api.Group("/evaluator")
	evaluator.PATCH("/profile/", s.evaluatorHandler.UpdateProfile, s.authMiddleware)
	evaluator.GET("/:id/", s.evaluatorHandler.GetProfile)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

// ServeHTTP lets tests drive the router without a listening socket.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
