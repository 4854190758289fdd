package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shopapi/models"
)

// Mongo implements Store on top of a MongoDB database. Every write replaces
// or updates whole documents; concurrent writers to the same document are
// last-write-wins.
type Mongo struct {
	users    *mongo.Collection
	products *mongo.Collection
	reviews  *mongo.Collection
	carts    *mongo.Collection
	orders   *mongo.Collection
}

var _ Store = (*Mongo)(nil)

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		users:    db.Collection("users"),
		products: db.Collection("products"),
		reviews:  db.Collection("reviews"),
		carts:    db.Collection("carts"),
		orders:   db.Collection("orders"),
	}
}

// EnsureIndexes creates the uniqueness indexes backing DuplicateEmail and
// DuplicateReview. Safe to call on every startup.
func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = s.reviews.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "product_id", Value: 1}, {Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func mapInsertErr(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func mapFindErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// Users

func (s *Mongo) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.users.InsertOne(ctx, user)
	return mapInsertErr(err)
}

func (s *Mongo) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, mapFindErr(err)
	}
	return &user, nil
}

func (s *Mongo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, mapFindErr(err)
	}
	return &user, nil
}

func (s *Mongo) UpdateWishlist(ctx context.Context, userId string, wishlist []string) error {
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": userId},
		bson.M{"$set": bson.M{"wishlist": wishlist}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Mongo) UpdatePassword(ctx context.Context, userId, passwordHash string) error {
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": userId},
		bson.M{"$set": bson.M{"password": passwordHash}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Products

func (s *Mongo) CreateProduct(ctx context.Context, product *models.Product) error {
	_, err := s.products.InsertOne(ctx, product)
	return mapInsertErr(err)
}

func (s *Mongo) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := s.products.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		return nil, mapFindErr(err)
	}
	return &product, nil
}

func (s *Mongo) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	query := bson.M{}
	if filter.Size != "" {
		query["sizes"] = filter.Size
	}
	if filter.Color != "" {
		query["colors"] = filter.Color
	}
	if filter.Design != "" {
		query["design_category"] = filter.Design
	}
	return s.decodeProducts(ctx, query)
}

func (s *Mongo) ListProductsByIds(ctx context.Context, ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	return s.decodeProducts(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (s *Mongo) decodeProducts(ctx context.Context, query bson.M) ([]models.Product, error) {
	cur, err := s.products.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Mongo) UpdateProduct(ctx context.Context, product *models.Product) error {
	res, err := s.products.ReplaceOne(ctx, bson.M{"_id": product.Id}, product)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Mongo) UpdateProductRating(ctx context.Context, id string, rating float64, reviewCount int) error {
	res, err := s.products.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"rating": rating, "review_count": reviewCount}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Mongo) DeleteProduct(ctx context.Context, id string) error {
	res, err := s.products.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Reviews

func (s *Mongo) CreateReview(ctx context.Context, review *models.Review) error {
	_, err := s.reviews.InsertOne(ctx, review)
	return mapInsertErr(err)
}

func (s *Mongo) ListReviews(ctx context.Context, productId string) ([]models.Review, error) {
	cur, err := s.reviews.Find(ctx, bson.M{"product_id": productId})
	if err != nil {
		return nil, err
	}
	reviews := []models.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *Mongo) GetReviewByProductUser(ctx context.Context, productId, userId string) (*models.Review, error) {
	var review models.Review
	err := s.reviews.FindOne(ctx, bson.M{"product_id": productId, "user_id": userId}).Decode(&review)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &review, nil
}

// Carts

func (s *Mongo) GetCart(ctx context.Context, userId string) (*models.Cart, error) {
	var cart models.Cart
	if err := s.carts.FindOne(ctx, bson.M{"_id": userId}).Decode(&cart); err != nil {
		return nil, mapFindErr(err)
	}
	return &cart, nil
}

func (s *Mongo) SaveCart(ctx context.Context, cart *models.Cart) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.carts.ReplaceOne(ctx, bson.M{"_id": cart.UserId}, cart, opts)
	return err
}

func (s *Mongo) DeleteCart(ctx context.Context, userId string) error {
	// Deleting an absent cart is not an error; order placement clears the
	// cart unconditionally.
	_, err := s.carts.DeleteOne(ctx, bson.M{"_id": userId})
	return err
}

// Orders

func (s *Mongo) CreateOrder(ctx context.Context, order *models.Order) error {
	_, err := s.orders.InsertOne(ctx, order)
	return mapInsertErr(err)
}

func (s *Mongo) ListOrdersByUser(ctx context.Context, userId string) ([]models.Order, error) {
	return s.decodeOrders(ctx, bson.M{"user_id": userId})
}

func (s *Mongo) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.decodeOrders(ctx, bson.M{})
}

func (s *Mongo) decodeOrders(ctx context.Context, query bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.orders.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
