package controller

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopapi/middleware"
	"shopapi/models"
	"shopapi/store"
)

type ReviewController struct {
	Products store.ProductStore
	Reviews  store.ReviewStore
}

func NewReviewController(products store.ProductStore, reviews store.ReviewStore) *ReviewController {
	return &ReviewController{Products: products, Reviews: reviews}
}

func (rc *ReviewController) GetReviews(c *gin.Context) {
	reviews, err := rc.Reviews.ListReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

type reviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// CreateReview stores the review and rewrites the product's aggregate from
// the full review set, so each write converges to an exact mean and count.
func (rc *ReviewController) CreateReview(c *gin.Context) {
	var input reviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	productId := c.Param("id")
	user := middleware.CurrentUser(c)

	if _, err := rc.Products.GetProduct(ctx, productId); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if _, err := rc.Reviews.GetReviewByProductUser(ctx, productId, user.Id); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You already reviewed this product"})
		return
	}

	review := &models.Review{
		Id:        uuid.NewString(),
		ProductId: productId,
		UserId:    user.Id,
		UserName:  user.Name,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := rc.Reviews.CreateReview(ctx, review); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You already reviewed this product"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create review"})
		return
	}

	reviews, err := rc.Reviews.ListReviews(ctx, productId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not recompute rating"})
		return
	}
	if err := rc.Products.UpdateProductRating(ctx, productId,
		averageRating(reviews), len(reviews)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not recompute rating"})
		return
	}

	c.JSON(http.StatusOK, review)
}

// averageRating is the arithmetic mean rounded to one decimal place, ties
// to even (so a mean of 4.25 stores 4.2, not 4.3).
func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.RoundToEven(mean*10) / 10
}
