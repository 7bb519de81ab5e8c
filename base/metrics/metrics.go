/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Rejection: *.rejected
*/
package metrics

import (
	"strings"
	"time"

	"github.com/x-xyz/ipmarket/base/env"
	"github.com/x-xyz/ipmarket/base/log"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// Option is functional parameter for metrics option
type Option func(*opt)

type opt struct {
	withPodName bool
}

// WithoutPodName drops the pod tag, use it for high cardinality metrics
func WithoutPodName() Option {
	return func(o *opt) {
		o.withPodName = false
	}
}

// New creates a metric client which prefixes every key with pkgName
func New(pkgName string, options ...Option) Service {
	o := opt{withPodName: true}
	for _, option := range options {
		option(&o)
	}

	// using host removes all tags associated with host
	// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
	tags := []string{"host:", "env:" + env.EnvName(), "app:" + env.AppName()}
	if o.withPodName {
		tags = append(tags, "pod:"+env.PodName())
	}

	return &Metrics{
		pkgName: pkgName,
		tags:    tags,
	}
}

// Metrics sends to the shared statsd client pool
type Metrics struct {
	pkgName string
	tags    []string
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + "." + key
}

func (mt *Metrics) allTags(tags []string) []string {
	return append(append([]string{}, mt.tags...), parseTag(tags)...)
}

// guard keeps a misbehaving statsd client from taking the caller down
func (mt *Metrics) guard(fn string, key string, tags []string) {
	if err := recover(); err != nil {
		log.Log().WithFields(log.Fields{
			"err":  err,
			"func": fn,
			"key":  mt.key(key) + "#" + strings.Join(tags, "#"),
		}).Error("metrics panic")
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.guard("BumpAvg", key, tags)
	if err := client().Gauge(mt.key(key), val, mt.allTags(tags), 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpAvg"}).Error("Bump fail")
	}
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.guard("BumpSum", key, tags)
	if err := client().Count(mt.key(key), int64(val), mt.allTags(tags), 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpSum"}).Error("Bump fail")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.guard("BumpHistogram", key, tags)
	if err := client().Histogram(mt.key(key), val, mt.allTags(tags), 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpHistogram"}).Error("Bump fail")
	}
}

// BumpTime starts a timer. Call End() on the result to record it:
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		mt:    mt,
		key:   key,
		tags:  tags,
		start: time.Now(),
	}
}

type timeTracker struct {
	mt    *Metrics
	key   string
	tags  []string
	start time.Time
}

func (t *timeTracker) End() {
	defer t.mt.guard("BumpTime", t.key, t.tags)
	d := time.Since(t.start)
	ms := float64(d) / float64(time.Millisecond)
	if err := client().TimeInMilliseconds(t.mt.key(t.key), ms, t.mt.allTags(t.tags), 1); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key, "func": "BumpTime"}).Error("Bump fail")
	}
}

func parseTag(tags []string) []string {
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}
