package twoiplib

import (
	"context"
	"fmt"
	"net/netip"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

const batchPoolExpiryTime = time.Minute

type lookupRequest struct {
	ctx           context.Context
	kind          LookupKind
	addr          netip.Addr
	index         int
	gw            gateway
	resultChannel chan<- indexedOutcome
	wg            *sync.WaitGroup
}

type indexedOutcome struct {
	index   int
	outcome rawOutcome
}

func processLookup(args interface{}) {
	params := args.(*lookupRequest)
	defer params.wg.Done()

	params.resultChannel <- indexedOutcome{
		index:   params.index,
		outcome: params.gw.fetch(params.ctx, params.kind, params.addr),
	}
}

// runBatch resolves all given addresses concurrently and returns
// outcomes positionally aligned with the input. The whole batch shares
// a single connection pool which is torn down before return. A failed
// address produces an outcome with err set, it never fails the batch.
func (c *Client) runBatch(ctx context.Context, kind LookupKind, addrs []netip.Addr) []rawOutcome {
	rv := make([]rawOutcome, len(addrs))

	if len(addrs) == 0 {
		return rv
	}

	httpClient, cleanup := c.acquireHTTPClient()
	defer cleanup()

	gw := gateway{
		client:  httpClient,
		baseURL: c.baseURL,
		key:     c.key,
	}

	resultChannel := make(chan indexedOutcome, len(addrs))
	wg := &sync.WaitGroup{}

	pool, _ := ants.NewPoolWithFunc(c.connections, processLookup,
		ants.WithExpiryDuration(batchPoolExpiryTime))
	defer pool.Release()

	for i, v := range addrs {
		wg.Add(1)

		req := &lookupRequest{
			ctx:           ctx,
			kind:          kind,
			addr:          v,
			index:         i,
			gw:            gw,
			resultChannel: resultChannel,
			wg:            wg,
		}

		if err := pool.Invoke(req); err != nil {
			wg.Done()

			rv[i] = rawOutcome{
				addr: v,
				err:  fmt.Errorf("cannot schedule a lookup: %w", err),
			}
		}
	}

	go func() {
		wg.Wait()
		close(resultChannel)
	}()

	for res := range resultChannel {
		rv[res.index] = res.outcome
	}

	return rv
}
