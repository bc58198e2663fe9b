// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package pricing

import (
	"fmt"

	"github.com/Fantom-foundation/Nimbus/go/usage"
	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedOracle memorizes the prices computed by another oracle. It is safe
// for concurrent use. Failed price computations are not cached.
type CachedOracle struct {
	inner Oracle
	cache *lru.Cache[usage.CryptoCreateMeta, Fee]
}

func NewCachedOracle(inner Oracle, size int) (*CachedOracle, error) {
	cache, err := lru.New[usage.CryptoCreateMeta, Fee](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create price cache: %w", err)
	}
	return &CachedOracle{
		inner: inner,
		cache: cache,
	}, nil
}

func (o *CachedOracle) Price(meta usage.CryptoCreateMeta) (Fee, error) {
	if fee, found := o.cache.Get(meta); found {
		return fee, nil
	}
	fee, err := o.inner.Price(meta)
	if err != nil {
		return Fee{}, err
	}
	o.cache.Add(meta, fee)
	return fee, nil
}
