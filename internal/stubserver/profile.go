package stubserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthshop-client/internal/domain"
)

func (a *api) getHealthProfile(c *gin.Context) {
	p, ok := a.store.profileFor(currentUserID(c))
	if !ok {
		errorJSON(c, http.StatusNotFound, "Health profile not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (a *api) updateHealthProfile(c *gin.Context) {
	var p domain.HealthProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if p.Age < 0 || p.Age > 150 {
		errorJSON(c, http.StatusBadRequest, "Age must be between 0 and 150")
		return
	}
	p.AgeGroup = ageGroupFor(p.Age)
	c.JSON(http.StatusOK, a.store.setProfile(currentUserID(c), p))
}

func ageGroupFor(age int) string {
	switch {
	case age <= 0:
		return ""
	case age < 20:
		return domain.AgeGroupTeen
	case age < 30:
		return domain.AgeGroupYoungAdult
	case age < 45:
		return domain.AgeGroupAdult
	case age < 60:
		return domain.AgeGroupMiddleAged
	default:
		return domain.AgeGroupSenior
	}
}
