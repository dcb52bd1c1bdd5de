// Package repository talks to the songs collection. Cheap match stages
// (placeholder exclusion, exact-name lookups, regex searches) are pushed
// down to Mongo; grouping and derivation run in the aggregate package.
package repository

import (
	"context"
	"regexp"
	"time"

	"github.com/tsegayberhanu/echodash/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	findTimeout   = 10 * time.Second
	singleTimeout = 5 * time.Second
)

// notEmpty matches values that are neither null nor the empty string.
func notEmpty() bson.M {
	return bson.M{"$nin": bson.A{nil, ""}}
}

// notPlaceholder additionally excludes the entity's sentinel value.
func notPlaceholder(sentinel string) bson.M {
	return bson.M{"$nin": bson.A{nil, "", sentinel}}
}

// containsRegex is a case-insensitive substring match. The needle is quoted
// so user input cannot inject regex syntax.
func containsRegex(needle string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(needle), Options: "i"}
}

// loadSongs runs a find with the given match and decodes every song.
func loadSongs(ctx context.Context, col *mongo.Collection, match bson.M, opts ...*options.FindOptions) ([]domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, findTimeout)
	defer cancel()
	cur, err := col.Find(ctx, match, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	songs := []domain.Song{}
	for cur.Next(ctx) {
		var s domain.Song
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		songs = append(songs, s)
	}
	return songs, cur.Err()
}

// distinctStrings collects the distinct non-empty string values of a field.
func distinctStrings(ctx context.Context, col *mongo.Collection, field string, match bson.M) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, findTimeout)
	defer cancel()
	values, err := col.Distinct(ctx, field, match)
	if err != nil {
		return nil, err
	}
	out := []string{}
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}
