package source

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/wristscale/pkg/tabular"
)

// Mongo reads every document of a MongoDB collection. Documents use the
// same field names and aliases as the other sources; "_id" is ignored
// unless the document has no "id" field.
type Mongo struct {
	URI        string
	Database   string
	Collection string
}

func (m *Mongo) Name() string {
	return fmt.Sprintf("%s:%s/%s", KindMongo, m.Database, m.Collection)
}

func (m *Mongo) Rows(ctx context.Context) ([]tabular.Row, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.URI))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer client.Disconnect(context.WithoutCancel(ctx))

	cur, err := client.Database(m.Database).Collection(m.Collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	rows := make([]tabular.Row, 0, len(docs))
	for _, doc := range docs {
		rows = append(rows, documentRow(doc))
	}
	return rows, nil
}

func documentRow(doc bson.M) tabular.Row {
	row := make(tabular.Row, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		if s, ok := bsonScalar(v); ok {
			row[strings.TrimSpace(k)] = strings.TrimSpace(s)
		}
	}
	if _, ok := row["id"]; !ok {
		if oid, ok := doc["_id"].(primitive.ObjectID); ok {
			row["id"] = oid.Hex()
		} else if s, ok := doc["_id"].(string); ok {
			row["id"] = s
		}
	}
	return row
}

func bsonScalar(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", true
	case string:
		return x, true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	case primitive.Decimal128:
		return x.String(), true
	default:
		return "", false
	}
}
