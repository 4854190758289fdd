package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopapi/models"
	"shopapi/store"
)

type ProductController struct {
	Products store.ProductStore
}

func NewProductController(products store.ProductStore) *ProductController {
	return &ProductController{Products: products}
}

type productInput struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description"`
	Price          float64  `json:"price" binding:"required,gt=0"`
	Images         []string `json:"images"`
	Sizes          []string `json:"sizes"`
	Colors         []string `json:"colors"`
	DesignCategory string   `json:"design_category"`
	Stock          int      `json:"stock" binding:"min=0"`
}

func (pc *ProductController) GetProducts(c *gin.Context) {
	filter := store.ProductFilter{
		Size:   c.Query("size"),
		Color:  c.Query("color"),
		Design: c.Query("design"),
	}
	products, err := pc.Products.ListProducts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (pc *ProductController) GetProductByID(c *gin.Context) {
	product, err := pc.Products.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := &models.Product{
		Id:             uuid.NewString(),
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		Images:         defaultSlice(input.Images),
		Sizes:          defaultSlice(input.Sizes),
		Colors:         defaultSlice(input.Colors),
		DesignCategory: input.DesignCategory,
		Stock:          input.Stock,
		Rating:         0,
		ReviewCount:    0,
		CreatedAt:      time.Now().UTC(),
	}
	if err := pc.Products.CreateProduct(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	product, err := pc.Products.GetProduct(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	// Rating, review count and creation time survive the update.
	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Images = defaultSlice(input.Images)
	product.Sizes = defaultSlice(input.Sizes)
	product.Colors = defaultSlice(input.Colors)
	product.DesignCategory = input.DesignCategory
	product.Stock = input.Stock

	if err := pc.Products.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	if err := pc.Products.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

func defaultSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
