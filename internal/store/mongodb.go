package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"channel-crawler-go/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	mongoOnce sync.Once
	mongoCli  *mongo.Client
	mongoErr  error
)

func mongoDBName() string {
	v := strings.TrimSpace(config.AppConfig.MongoDB)
	if v == "" {
		return "channel_crawler"
	}
	return v
}

func mongoClient() (*mongo.Client, error) {
	mongoOnce.Do(func() {
		uri := strings.TrimSpace(config.AppConfig.MongoURI)
		if uri == "" {
			mongoErr = errors.New("MONGO_URI is empty")
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cli, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			mongoErr = err
			return
		}
		if err := cli.Ping(ctx, readpref.Primary()); err != nil {
			_ = cli.Disconnect(ctx)
			mongoErr = err
			return
		}
		if err := initMongoIndexes(ctx, cli); err != nil {
			_ = cli.Disconnect(ctx)
			mongoErr = err
			return
		}
		mongoCli = cli
	})
	return mongoCli, mongoErr
}

func initMongoIndexes(ctx context.Context, cli *mongo.Client) error {
	videos := cli.Database(mongoDBName()).Collection("videos")
	_, err := videos.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "channel_id", Value: 1}, {Key: "video_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_channel_video"),
		},
	})
	return err
}

func mongoUpsertVideo(channelID, videoID, dataJSON string) error {
	cli, err := mongoClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now().Unix()
	coll := cli.Database(mongoDBName()).Collection("videos")
	filter := bson.D{{Key: "channel_id", Value: channelID}, {Key: "video_id", Value: videoID}}
	update := bson.D{{Key: "$set", Value: bson.M{
		"channel_id":  channelID,
		"video_id":    videoID,
		"data_json":   dataJSON,
		"updated_at":  now,
		"updated_iso": time.Now().UTC().Format(time.RFC3339Nano),
	}}}
	_, err = coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
