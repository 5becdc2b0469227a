package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedOptions struct {
	envName         string
	storeCount      int
	eventCount      int
	linkCount       int
	dropCollections bool
	randomSeed      int64
}

type collections struct {
	stores     string
	seatStatus string
	storeLinks string
}

type storeDocument struct {
	ID             primitive.ObjectID `bson:"_id"`
	Name           string             `bson:"name"`
	Address        string             `bson:"address,omitempty"`
	City           string             `bson:"city"`
	Genre          string             `bson:"genre"`
	Latitude       *float64           `bson:"latitude,omitempty"`
	Longitude      *float64           `bson:"longitude,omitempty"`
	ImageURLs      []string           `bson:"imageUrls,omitempty"`
	ReservationURL string             `bson:"reservationUrl"`
	Description    string             `bson:"description,omitempty"`
	IsPublished    bool               `bson:"isPublished"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

type seatStatusDocument struct {
	ID              string `bson:"_id"`
	StoreID         string `bson:"storeId"`
	Status          string `bson:"status"`
	ExpiresAt       int64  `bson:"expiresAt"`
	CreatedAt       int64  `bson:"createdAt"`
	UpdatedByUserID string `bson:"updatedByUserId,omitempty"`
}

type storeLinkDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Subject     string             `bson:"subject"`
	StoreID     string             `bson:"storeId"`
	StoreUserID string             `bson:"storeUserId"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func main() {
	opts := parseFlags()

	if err := loadEnvFiles(opts.envName); err != nil {
		log.Fatalf("環境変数の読み込みに失敗しました: %v", err)
	}

	cfg := collections{
		stores:     envOrDefault("STORE_COLLECTION", "stores"),
		seatStatus: envOrDefault("SEAT_STATUS_COLLECTION", "seat_status_updates"),
		storeLinks: envOrDefault("STORE_LINK_COLLECTION", "store_user_links"),
	}

	mongoURI := envOrDefault("MONGO_URI", "mongodb://localhost:27017")
	dbName := envOrDefault("MONGO_DB", "akiseki-navi")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("MongoDB 接続に失敗しました: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(dbName)

	if opts.dropCollections {
		if err := dropCollections(ctx, db, cfg); err != nil {
			log.Fatalf("コレクション削除に失敗しました: %v", err)
		}
		log.Printf("既存コレクションを削除しました")
	}

	if err := ensureIndexes(ctx, db, cfg); err != nil {
		log.Fatalf("インデックス作成に失敗しました: %v", err)
	}

	rng := rand.New(rand.NewSource(opts.randomSeed))

	storeDocs := generateStores(rng, opts.storeCount)
	if len(storeDocs) == 0 {
		log.Fatal("store docs が生成されませんでした")
	}
	if err := insertMany(ctx, db.Collection(cfg.stores), toAnySlice(storeDocs)); err != nil {
		log.Fatalf("店舗データの挿入に失敗しました: %v", err)
	}

	linkDocs := generateStoreLinks(rng, storeDocs, opts.linkCount)
	if err := insertMany(ctx, db.Collection(cfg.storeLinks), toAnySlice(linkDocs)); err != nil {
		log.Fatalf("店舗ユーザー紐付けの挿入に失敗しました: %v", err)
	}

	eventDocs := generateSeatStatusEvents(rng, storeDocs, linkDocs, opts.eventCount)
	if err := insertMany(ctx, db.Collection(cfg.seatStatus), toAnySlice(eventDocs)); err != nil {
		log.Fatalf("空席イベントの挿入に失敗しました: %v", err)
	}

	log.Printf("Seed 完了: stores=%d links=%d events=%d",
		len(storeDocs), len(linkDocs), len(eventDocs))
	log.Printf("Mongo: %s / %s (env=%s)", mongoURI, dbName, opts.envName)
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.StringVar(&opts.envName, "env", "local", "env 内の env ファイル名 (例: local, staging)")
	flag.IntVar(&opts.storeCount, "stores", 12, "生成する店舗数")
	flag.IntVar(&opts.eventCount, "events", 60, "生成する空席ステータスイベント数")
	flag.IntVar(&opts.linkCount, "links", 8, "生成する店舗ユーザー紐付け数")
	flag.BoolVar(&opts.dropCollections, "drop", true, "既存コレクションを削除してから投入する")
	defaultSeed := time.Now().UnixNano()
	flag.Int64Var(&opts.randomSeed, "seed", defaultSeed, "乱数シード（再現用）")
	flag.Parse()

	if opts.storeCount <= 0 {
		log.Fatal("stores は 1 以上を指定してください")
	}
	if opts.eventCount < 0 {
		opts.eventCount = 0
	}
	if opts.linkCount < 0 {
		opts.linkCount = 0
	}
	if opts.linkCount > opts.storeCount {
		opts.linkCount = opts.storeCount
	}
	return opts
}

func loadEnvFiles(envName string) error {
	base := filepath.Clean(filepath.Join("..", "env"))
	files := []string{
		filepath.Join(base, "shared.env"),
		filepath.Join(base, fmt.Sprintf("%s.env", envName)),
	}
	for _, file := range files {
		if err := loadEnvFile(file); err != nil {
			return err
		}
	}
	return nil
}

func loadEnvFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%s の読み込みに失敗しました: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func dropCollections(ctx context.Context, db *mongo.Database, cfg collections) error {
	for _, name := range []string{cfg.stores, cfg.seatStatus, cfg.storeLinks} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			// Drop は存在しない場合も err を返すので warning ログにとどめる
			log.Printf("WARN: コレクション %s の削除に失敗: %v", name, err)
		}
	}
	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, cfg collections) error {
	storeIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "isPublished", Value: 1}, {Key: "city", Value: 1}},
			Options: options.Index().SetName("idx_store_published_city"),
		},
		{
			Keys:    bson.D{{Key: "updatedAt", Value: -1}},
			Options: options.Index().SetName("idx_store_updated"),
		},
	}
	if _, err := db.Collection(cfg.stores).Indexes().CreateMany(ctx, storeIndexes); err != nil {
		return err
	}

	eventIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "storeId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_seat_status_store_created"),
		},
		{
			Keys:    bson.D{{Key: "expiresAt", Value: 1}},
			Options: options.Index().SetName("idx_seat_status_expires"),
		},
	}
	if _, err := db.Collection(cfg.seatStatus).Indexes().CreateMany(ctx, eventIndexes); err != nil {
		return err
	}

	if _, err := db.Collection(cfg.storeLinks).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "subject", Value: 1}, {Key: "storeId", Value: 1}},
		Options: options.Index().SetName("uniq_store_link").SetUnique(true),
	}); err != nil {
		return err
	}

	return nil
}

func generateStores(rng *rand.Rand, count int) []storeDocument {
	now := time.Now().UTC()
	docs := make([]storeDocument, 0, count)

	for i := 0; i < count; i++ {
		name := storeNames[i%len(storeNames)]
		city := cities[rng.Intn(len(cities))]
		genre := genreOptions[rng.Intn(len(genreOptions))]
		created := now.Add(-time.Duration(rng.Intn(365)) * 24 * time.Hour)

		doc := storeDocument{
			ID:             primitive.NewObjectID(),
			Name:           name,
			Address:        fmt.Sprintf("東京都%s%d-%d-%d", city, 1+rng.Intn(5), 1+rng.Intn(20), 1+rng.Intn(15)),
			City:           city,
			Genre:          genre,
			ImageURLs:      generateImageURLs(rng, name, 3),
			ReservationURL: fmt.Sprintf("https://reserve.example.com/stores/%s", slugify(name)),
			Description:    descriptionFragments[rng.Intn(len(descriptionFragments))],
			IsPublished:    rng.Intn(5) != 0,
			CreatedAt:      created,
			UpdatedAt:      created.Add(time.Duration(rng.Intn(72)) * time.Hour),
		}
		// 7割程度の店舗に座標を付ける。残りは住所からの地図埋め込みにフォールバックする。
		if rng.Intn(10) < 7 {
			lat := 35.55 + rng.Float64()*0.2
			lng := 139.6 + rng.Float64()*0.2
			doc.Latitude = &lat
			doc.Longitude = &lng
		}
		docs = append(docs, doc)
	}
	return docs
}

func generateStoreLinks(rng *rand.Rand, stores []storeDocument, count int) []storeLinkDocument {
	if count <= 0 || len(stores) == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]storeLinkDocument, 0, count)
	for i := 0; i < count && i < len(stores); i++ {
		docs = append(docs, storeLinkDocument{
			ID:          primitive.NewObjectID(),
			Subject:     fmt.Sprintf("seed-subject-%03d", i+1),
			StoreID:     stores[i].ID.Hex(),
			StoreUserID: fmt.Sprintf("store-user-%03d", i+1),
			CreatedAt:   now.Add(-time.Duration(rng.Intn(240)) * time.Hour),
		})
	}
	return docs
}

// generateSeatStatusEvents は有効期限内のイベントと失効済みイベントを混在させる。
// 公開一覧で「空席あり」「満席」「不明」の全パターンが確認できるようにする。
func generateSeatStatusEvents(rng *rand.Rand, stores []storeDocument, links []storeLinkDocument, count int) []seatStatusDocument {
	if count <= 0 || len(stores) == 0 {
		return nil
	}
	const expiryWindow = 30 * 60
	now := time.Now().Unix()
	docs := make([]seatStatusDocument, 0, count)

	for i := 0; i < count; i++ {
		store := stores[rng.Intn(len(stores))]
		status := "available"
		if rng.Intn(3) == 0 {
			status = "unavailable"
		}

		// 半数は既に失効済みの過去イベントにする。
		createdAt := now - int64(rng.Intn(expiryWindow/2))
		if rng.Intn(2) == 0 {
			createdAt = now - int64(expiryWindow+rng.Intn(6*3600))
		}

		var updatedBy string
		if len(links) > 0 && rng.Intn(2) == 0 {
			updatedBy = links[rng.Intn(len(links))].StoreUserID
		}

		docs = append(docs, seatStatusDocument{
			ID:              uuid.NewString(),
			StoreID:         store.ID.Hex(),
			Status:          status,
			ExpiresAt:       createdAt + expiryWindow,
			CreatedAt:       createdAt,
			UpdatedByUserID: updatedBy,
		})
	}
	return docs
}

func insertMany(ctx context.Context, col *mongo.Collection, docs []interface{}) error {
	if len(docs) == 0 {
		return nil
	}
	_, err := col.InsertMany(ctx, docs)
	return err
}

func toAnySlice[T any](in []T) []interface{} {
	out := make([]interface{}, len(in))
	for i := range in {
		out[i] = in[i]
	}
	return out
}

func generateImageURLs(rng *rand.Rand, name string, max int) []string {
	if max <= 0 {
		return nil
	}
	count := 1 + rng.Intn(max)
	urls := make([]string, 0, count)
	for i := 0; i < count; i++ {
		bg := colorCodes[rng.Intn(len(colorCodes))]
		fg := colorCodes[rng.Intn(len(colorCodes))]
		text := url.QueryEscape(fmt.Sprintf("%s %d", name, i+1))
		urls = append(urls, fmt.Sprintf("https://dummyjson.com/image/600x400/%s/%s/?text=%s", bg, fg, text))
	}
	return urls
}

func slugify(parts ...string) string {
	builder := strings.Builder{}
	for _, part := range parts {
		for _, r := range strings.ToLower(part) {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				builder.WriteRune(r)
			} else if unicode.IsSpace(r) || r == '-' || r == '_' {
				builder.WriteRune('-')
			}
		}
	}
	out := builder.String()
	out = strings.Trim(out, "-")
	if out == "" {
		return fmt.Sprintf("store-%d", time.Now().UnixNano())
	}
	return out
}

var (
	storeNames = []string{
		"酒場あきせき", "炉端 まるや", "立ち呑み ひかり", "鮨処 いその", "麺屋 青嵐", "ビストロ灯", "焼鳥 つばめ", "喫茶ロンド", "中華 龍華楼", "バル・デ・ソル", "天ぷら こばし", "和食 さと菜",
	}

	cities = []string{
		"渋谷区", "新宿区", "港区", "中央区", "千代田区", "目黒区", "世田谷区", "品川区",
	}

	genreOptions = []string{"居酒屋", "寿司", "ラーメン", "イタリアン", "焼鳥", "カフェ", "中華", "バル"}

	colorCodes = []string{"111111", "333333", "555555", "999999", "cccccc", "f5f5f5"}

	descriptionFragments = []string{
		"カウンター中心の小さな店。仕事帰りにふらっと立ち寄れる雰囲気が売り。",
		"地元産の食材にこだわる。週末は満席になりやすいので空席情報の確認がおすすめ。",
		"昼はランチ営業、夜は予約優先。テラス席あり。",
		"老舗の味をそのままに改装した二代目の店。一人客歓迎。",
	}
)
