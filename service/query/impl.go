package query

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/base/database/mongoclient"
	"github.com/x-xyz/ipmarket/base/log"
	"github.com/x-xyz/ipmarket/base/metrics"
	"github.com/x-xyz/ipmarket/domain"
)

const (
	queryMaxTime = 20 * time.Second
	slowOp       = 500 * time.Millisecond
)

var (
	timeNow = time.Now
	met     = metrics.New("mongo")
)

type impl struct {
	client     *mongoclient.Client
	checkIndex bool
}

// New wraps client. With checkIndex every read is explained first and a
// collection scan fails the read with ErrCollScan.
func New(client *mongoclient.Client, checkIndex bool) Mongo {
	return &impl{
		client:     client,
		checkIndex: checkIndex,
	}
}

// op is one tracked call against a table
type op struct {
	c      ctx.Ctx
	table  domain.Table
	name   string
	filter interface{}
	start  time.Time
	timer  metrics.Ender
}

func (im *impl) begin(c ctx.Ctx, table domain.Table, name string, filter interface{}) *op {
	fields := log.Fields{"table": table, "op": name}
	if filter != nil {
		fields["filter"] = filter
	}
	return &op{
		c:      ctx.WithValues(c, fields),
		table:  table,
		name:   name,
		filter: filter,
		start:  timeNow(),
		timer:  met.BumpTime("time", "func", name, "table", string(table)),
	}
}

func (o *op) end() {
	o.timer.End()
	if elapsed := timeNow().Sub(o.start); elapsed >= slowOp {
		met.BumpSum("slowlog", 1, "table", string(o.table), "action", o.name)
		o.c.WithFields(log.Fields{"durationMs": elapsed.Milliseconds()}).Warn("mongo slowlog")
	}
}

func (o *op) fail(msg string, err error) error {
	if _, ok := err.(topology.ConnectionError); ok {
		met.BumpSum("conn.err", 1)
	}
	o.c.WithField("err", err).Error(msg)
	return err
}

func (im *impl) coll(table domain.Table) *mongo.Collection {
	return im.client.Database().Collection(string(table))
}

func (im *impl) Insert(c ctx.Ctx, table domain.Table, doc interface{}) error {
	o := im.begin(c, table, "insert", nil)
	defer o.end()

	if _, err := im.coll(table).InsertOne(o.c, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return o.fail("InsertOne failed", err)
	}
	return nil
}

func (im *impl) Count(c ctx.Ctx, table domain.Table, filter interface{}) (int, error) {
	o := im.begin(c, table, "count", filter)
	defer o.end()

	if err := im.explain(o, "count", "query"); err != nil {
		return 0, err
	}
	n, err := im.coll(table).CountDocuments(o.c, filter, options.Count().SetMaxTime(queryMaxTime))
	if err != nil {
		return 0, o.fail("CountDocuments failed", err)
	}
	return int(n), nil
}

func (im *impl) Search(c ctx.Ctx, table domain.Table, offset, limit int, sort string, filter, results interface{}) error {
	o := im.begin(c, table, "search", filter)
	defer o.end()

	if err := im.explain(o, "find", "filter"); err != nil {
		return err
	}

	opts := options.Find().
		SetMaxTime(queryMaxTime).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	if keys := sortOption(sort); len(keys) > 0 {
		opts.SetSort(keys)
	}
	cursor, err := im.coll(table).Find(o.c, filter, opts)
	if err != nil {
		return o.fail("Find failed", err)
	}
	defer cursor.Close(o.c)

	if err := cursor.All(o.c, results); err != nil {
		return o.fail("cursor.All failed", err)
	}
	return nil
}

func (im *impl) EnsureIndexes(c ctx.Ctx, table domain.Table, indexes ...Index) error {
	if len(indexes) == 0 {
		return nil
	}
	o := im.begin(c, table, "ensureIndexes", nil)
	defer o.end()

	models := make([]mongo.IndexModel, len(indexes))
	for i, idx := range indexes {
		models[i] = mongo.IndexModel{
			Keys:    sortOption(idx.Keys...),
			Options: options.Index().SetUnique(idx.Unique),
		}
	}
	if _, err := im.coll(table).Indexes().CreateMany(o.c, models); err != nil {
		return o.fail("CreateMany failed", err)
	}
	return nil
}

func (im *impl) Ping(c ctx.Ctx) error {
	return im.client.Ping(c, readpref.Primary())
}

// sortOption turns "field" / "-field" into an ordered bson sort document
func sortOption(fields ...string) bson.D {
	res := bson.D{}
	for _, f := range fields {
		switch {
		case f == "":
		case strings.HasPrefix(f, "-"):
			res = append(res, bson.E{Key: f[1:], Value: -1})
		default:
			res = append(res, bson.E{Key: f, Value: 1})
		}
	}
	return res
}

// explain asks the planner how the filter would run.
// ref: https://docs.mongodb.com/manual/reference/command/explain/
func (im *impl) explain(o *op, command, filterKey string) error {
	if !im.checkIndex {
		return nil
	}
	cmd := bson.D{
		{Key: "explain", Value: bson.D{
			{Key: command, Value: string(o.table)},
			{Key: filterKey, Value: o.filter},
		}},
		{Key: "verbosity", Value: "queryPlanner"},
	}

	var plan bson.M
	if err := im.client.Database().RunCommand(o.c, cmd).Decode(&plan); err != nil {
		// a failed explain never blocks the read
		o.c.WithField("err", err).Warn("explain failed")
		met.BumpSum("explain.err", 1)
		return nil
	}

	// the plan layout differs between server versions
	if strings.Contains(fmt.Sprint(plan), "COLLSCAN") {
		o.c.Warn("COLLSCAN")
		return ErrCollScan
	}
	return nil
}
