package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cfg "cuaderno/internal/config"
	"cuaderno/internal/entity"
	"cuaderno/internal/entity/generated"
	"cuaderno/internal/gateways/http/mw"
	"cuaderno/internal/usecase"
)

const userIDHeader = "X-User-ID"

//nolint:gochecknoglobals
var subscriptionOps = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "cuaderno",
	Name:      "subscription_operations_total",
	Help:      "Subscription operations by kind and outcome.",
}, []string{"op", "result"})

func setupRouter(r *gin.Engine, c cfg.Config, u UseCases) {
	r.HandleMethodNotAllowed = true

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	setupHealth(r, c.Service)

	if c.Metrics.Enabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := r.Group("/api")
	setupPlans(api, u)

	clerk := api.Group("/clerk")
	clerk.Use(mw.Auth(u.Sessions))
	setupSubscription(clerk, u)
	setupBilling(clerk, u)
}

func setupHealth(r *gin.Engine, svc cfg.ServiceConfig) {
	started := time.Now()

	payload := func() gin.H {
		return gin.H{
			"status":    "ok",
			"timestamp": strfmt.DateTime(time.Now().UTC()),
			"service":   svc.Name,
			"version":   svc.Version,
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, payload())
	})

	r.GET("/api/health", func(c *gin.Context) {
		body := payload()
		body["uptime"] = time.Since(started).Seconds()
		c.JSON(http.StatusOK, body)
	})
}

func setupPlans(r *gin.RouterGroup, u UseCases) {
	r.GET("/plans", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		if u.Plans == nil {
			respond(c, http.StatusOK, []struct{}{})
			return
		}
		respond(c, http.StatusOK, u.Plans.List())
	})
}

func setupSubscription(r *gin.RouterGroup, u UseCases) {
	r.GET("/get-subscription", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		sub, err := u.Sub.GetSubscription(c, resolveUser(c, c.Query("userId")))
		track("get", err)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, entity.ToRecord(sub))
	})

	r.POST("/update-subscription", func(c *gin.Context) {
		if !requireAcceptJSON(c) || !requireContentJSON(c) {
			return
		}

		var input generated.UpdateSubscriptionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			fail(c, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := input.Validate(strfmt.Default); err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}

		sub, err := u.Sub.UpdateSubscription(c, resolveUser(c, input.UserID), *input.PlanID)
		track("update", err)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, entity.ToRecord(sub))
	})

	r.POST("/cancel-subscription", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		sub, err := u.Sub.CancelSubscription(c, resolveUser(c, c.Query("userId")))
		track("cancel", err)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, entity.ToRecord(sub))
	})
}

func setupBilling(r *gin.RouterGroup, u UseCases) {
	r.POST("/create-checkout", func(c *gin.Context) {
		if !requireAcceptJSON(c) || !requireContentJSON(c) {
			return
		}

		var input generated.CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			fail(c, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := input.Validate(strfmt.Default); err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}

		checkout, err := u.Sub.CreateCheckout(c, resolveUser(c, c.Query("userId")), usecase.CheckoutRequest{
			PlanID:     *input.PlanID,
			SuccessURL: *input.SuccessURL,
			CancelURL:  *input.CancelURL,
		})
		track("checkout", err)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{
			"url":          checkout.URL,
			"sessionId":    checkout.SessionID,
			"subscription": entity.ToRecord(checkout.Subscription),
		})
	})

	r.POST("/billing-portal", func(c *gin.Context) {
		if !requireAcceptJSON(c) || !requireContentJSON(c) {
			return
		}

		var input generated.BillingPortalInput
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&input); err != nil {
				fail(c, http.StatusBadRequest, "invalid request body")
				return
			}
		}
		if err := input.Validate(strfmt.Default); err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}

		portal, err := u.Sub.BillingPortal(c, resolveUser(c, c.Query("userId")), input.ReturnURL.String())
		track("portal", err)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"url": portal})
	})
}

// resolveUser prefers the verified session user; otherwise the caller-supplied id,
// then the X-User-ID header.
func resolveUser(c *gin.Context, supplied string) string {
	if uid, ok := mw.UserID(c); ok {
		return uid
	}
	if s := strings.TrimSpace(supplied); s != "" {
		return s
	}
	return strings.TrimSpace(c.GetHeader(userIDHeader))
}

func respond(c *gin.Context, code int, data any) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func fail(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"success": false, "error": msg})
}

func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidPlan):
		fail(c, http.StatusBadRequest, "planId is required")
	case errors.Is(err, usecase.ErrInvalidUser):
		fail(c, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, usecase.ErrInvalidCheckout):
		fail(c, http.StatusUnprocessableEntity, err.Error())
	default:
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, "internal error")
	}
}

func track(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	subscriptionOps.WithLabelValues(op, result).Inc()
}

func acceptsJSON(h string) bool {
	if h == "" || h == "*/*" {
		return true
	}
	parts := strings.Split(h, ",")
	for _, p := range parts {
		mt := strings.TrimSpace(strings.SplitN(p, ";", 2)[0])
		if mt == "application/json" || mt == "*/*" {
			return true
		}
	}
	return false
}

func requireAcceptJSON(c *gin.Context) bool {
	if acceptsJSON(c.GetHeader("Accept")) {
		return true
	}
	fail(c, http.StatusNotAcceptable, "Accept application/json only")
	return false
}

func requireContentJSON(c *gin.Context) bool {
	if c.ContentType() == "" || c.ContentType() == "application/json" {
		return true
	}
	fail(c, http.StatusUnsupportedMediaType, "Use application/json")
	return false
}
