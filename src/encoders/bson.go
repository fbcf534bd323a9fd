package encoders

import (
	"mockapi/src/domain"

	"go.mongodb.org/mongo-driver/bson"
)

// BSONRootKey holds the record array: BSON needs a document at the top level.
const BSONRootKey = "data"

type BSONEncoder struct{}

func (BSONEncoder) Format() Format {
	return BSON
}

func (BSONEncoder) Encode(_ domain.EntityKey, records []domain.Record) ([]byte, error) {
	docs := make(bson.A, len(records))
	for i, record := range records {
		docs[i] = record
	}
	return bson.Marshal(bson.D{{Key: BSONRootKey, Value: docs}})
}
