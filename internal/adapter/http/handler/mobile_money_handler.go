package handler

import (
	"dashqard-redemption/internal/adapter/http/dto"
	"dashqard-redemption/internal/core/domain"
	"dashqard-redemption/pkg/apperror"
	"dashqard-redemption/pkg/response"

	"github.com/gin-gonic/gin"
)

// DetectProvider handles GET /api/v1/mobile-money/provider?phone=.
func DetectProvider(c *gin.Context) {
	var q dto.ProviderQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	provider, ok := domain.DetectProvider(q.Phone)
	response.OK(c, dto.ProviderResponse{
		Local:         domain.ToLocal(q.Phone),
		International: domain.ToInternational(q.Phone),
		Provider:      provider,
		Recognized:    ok,
	})
}
