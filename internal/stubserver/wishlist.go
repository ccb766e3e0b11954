package stubserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"healthshop-client/internal/domain"
)

func (a *api) getWishlist(c *gin.Context) {
	ids := a.store.wishlistFor(currentUserID(c))
	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := a.store.product(id); ok {
			products = append(products, p)
		}
	}
	c.JSON(http.StatusOK, products)
}

func (a *api) addToWishlist(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid product id")
		return
	}
	if _, ok := a.store.product(productID); !ok {
		errorJSON(c, http.StatusNotFound, "Product not found")
		return
	}
	a.store.addWishlist(currentUserID(c), productID)
	c.JSON(http.StatusOK, gin.H{"inWishlist": true})
}

func (a *api) removeFromWishlist(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid product id")
		return
	}
	a.store.removeWishlist(currentUserID(c), productID)
	c.JSON(http.StatusOK, gin.H{"inWishlist": false})
}

func (a *api) checkWishlist(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid product id")
		return
	}
	c.JSON(http.StatusOK, a.store.inWishlist(currentUserID(c), productID))
}
