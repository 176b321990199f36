package routes

import (
	"time"

	"github.com/flextrackapp/flextrack-backend/internal/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	authHandler *handlers.AuthHandler,
	friendHandler *handlers.FriendHandler,
	exerciseHandler *handlers.ExerciseHandler,
	workoutHandler *handlers.WorkoutHandler,
	profileHandler *handlers.ProfileHandler,
	postHandler *handlers.PostHandler,
	challengeHandler *handlers.ChallengeHandler,
	healthHandler *handlers.HealthHandler,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	user := app.Group("/user")

	// Signup/login rate limit: 10 req/min per IP (stricter)
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	user.Post("/signup", authLimiter, authHandler.Signup)
	user.Post("/login", authLimiter, authHandler.Login)
	user.Get("/logout", authHandler.Logout)
	user.Post("/add-friend", friendHandler.AddFriend)
	user.Get("/get-all-friends", friendHandler.GetAllFriends)

	exercise := app.Group("/exercise")
	exercise.Get("/get-all", exerciseHandler.GetAll)
	exercise.Post("/create", exerciseHandler.Create)
	exercise.Delete("/delete", exerciseHandler.Delete)

	workout := app.Group("/workout")
	workout.Get("/get-all", workoutHandler.GetAll)
	workout.Post("/create", workoutHandler.Create)
	workout.Post("/add-sessions", workoutHandler.AddSessions)
	workout.Delete("/delete", workoutHandler.Delete)
	workout.Post("/update-name", workoutHandler.UpdateName)
	workout.Get("/get", workoutHandler.Get)
	workout.Get("/get-plan", workoutHandler.GetPlan)
	workout.Post("/log", workoutHandler.LogSet)
	workout.Get("/logs", workoutHandler.GetLogs)

	profile := app.Group("/profile")
	profile.Get("/get-all", profileHandler.GetAll)
	profile.Get("/get", profileHandler.Get)
	profile.Post("/update", profileHandler.Update)

	post := app.Group("/post")
	post.Get("/get-all", postHandler.GetAll)
	post.Post("/create", postHandler.Create)
	post.Post("/add-comment", postHandler.AddComment)
	post.Post("/share", postHandler.Share)
	post.Get("/shared", postHandler.GetShared)

	challenge := app.Group("/challenge")
	challenge.Get("/get-all", challengeHandler.GetAll)
	challenge.Post("/create", challengeHandler.Create)
	challenge.Post("/log", challengeHandler.LogSet)
	challenge.Post("/invite", challengeHandler.Invite)
	challenge.Get("/invites", challengeHandler.GetInvites)
	challenge.Post("/accept-invite", challengeHandler.AcceptInvite)
}
