package middleware

import (
	"bufio"
	"bytes"
	"hash/fnv"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/base/log"
	"github.com/x-xyz/ipmarket/service/cache"
	"github.com/x-xyz/ipmarket/service/cache/provider"
	"github.com/x-xyz/ipmarket/service/cache/provider/compound"
	"github.com/x-xyz/ipmarket/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/ipmarket/service/cache/provider/redis"
	"github.com/x-xyz/ipmarket/service/redis"
)

const httpCachePfx = "httpCache"

var (
	httpCacheProvider provider.Provider
	httpCacheOnce     sync.Once
)

// SetupCache must run before CacheHttp. Responses are kept in a local layer of
// localSizeMB in front of redis.
func SetupCache(redis redis.Service, localSizeMB int) {
	httpCacheOnce.Do(func() {
		setupCache(compound.NewCompound(
			primitive.NewPrimitive(httpCachePfx, localSizeMB),
			redisCache.NewRedis(redis),
		))
	})
}

func setupCache(p provider.Provider) {
	httpCacheProvider = p
}

// cachedResponse is what gets stored per url
type cachedResponse struct {
	Body   []byte      `json:"body"`
	Header http.Header `json:"header"`
}

// recorder tees the body into buf and remembers the status
type recorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	r.buf.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *recorder) Flush() {
	r.ResponseWriter.(http.Flusher).Flush()
}

func (r *recorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return r.ResponseWriter.(http.Hijacker).Hijack()
}

// cacheKey hashes the url with its query values sorted, so parameter order
// does not split the cache
func cacheKey(u *url.URL) string {
	q := u.Query()
	for _, vals := range q {
		sort.Strings(vals)
	}
	canonical := url.URL{Path: u.Path, RawQuery: q.Encode()}

	h := fnv.New64a()
	h.Write([]byte(canonical.String()))
	return strconv.FormatUint(h.Sum64(), 36)
}

// CacheHttp serves 200 responses from the cache for ttl. Only use it on routes
// whose body depends on the url alone.
func CacheHttp(ttl time.Duration) echo.MiddlewareFunc {
	if httpCacheProvider == nil {
		panic("SetupCache must be called before CacheHttp")
	}

	responses := cache.New(cache.ServiceConfig{
		Ttl:   ttl,
		Pfx:   httpCachePfx,
		Cache: httpCacheProvider,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			context := c.Get("ctx").(ctx.Ctx)
			key := cacheKey(c.Request().URL)

			hit := cachedResponse{}
			err := responses.Get(context, key, &hit)
			if err == nil {
				for k, v := range hit.Header {
					c.Response().Header()[k] = v
				}
				return c.Blob(http.StatusOK, hit.Header.Get(echo.HeaderContentType), hit.Body)
			}
			if err != cache.ErrNotFound {
				context.WithFields(log.Fields{"err": err, "key": key}).Error("failed to responses.Get")
			}

			rec := &recorder{ResponseWriter: c.Response().Writer}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}
			if rec.status != http.StatusOK {
				return nil
			}

			miss := cachedResponse{Body: rec.buf.Bytes(), Header: rec.Header().Clone()}
			if err := responses.Set(context, key, miss); err != nil {
				context.WithFields(log.Fields{"err": err, "key": key}).Error("failed to responses.Set")
			}
			return nil
		}
	}
}
