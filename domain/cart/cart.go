/*
Package cart 实现购物车聚合：按商品标识合并的内存行项目集合。

购物车持有商品数据的副本而非引用：加入购物车后商品价格再变化，
已有行项目保持加入时的价格（"顾客同意支付的价格"），这是有意的解耦。
*/
package cart

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/kuyka38/mijawharati-sub000/domain/shared"
)

// Line 购物车行项目：一个商品标识及其数量
type Line struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	ImageRef  string
	Quantity  int
}

// Subtotal 行小计 = 单价 × 数量
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Candidate 待加入购物车的商品快照（加入时复制，不持有活引用）
type Candidate struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	ImageRef  string
}

// Aggregator 购物车聚合器
//
// 不变量：任一时刻每个商品标识至多对应一个行项目——
// 重复加入已存在的商品时数量递增而不是追加新行
type Aggregator struct {
	mu     sync.RWMutex
	lines  []Line
	stream *shared.Stream[Line]
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		lines:  make([]Line, 0),
		stream: shared.NewStream[Line](),
	}
}

// AddItem 按标识合并地加入一个商品
// 已存在：复制该行并数量+1，原位置保持不变；不存在：追加到末尾，数量为 1
func (a *Aggregator) AddItem(c Candidate) {
	a.mu.Lock()
	for i, line := range a.lines {
		if line.ProductID == c.ProductID {
			// 复制递增而非原地修改，避免已发出的快照观察到变化
			a.lines[i] = Line{
				ProductID: line.ProductID,
				Name:      line.Name,
				UnitPrice: line.UnitPrice,
				ImageRef:  line.ImageRef,
				Quantity:  line.Quantity + 1,
			}
			a.mu.Unlock()
			a.publish()
			return
		}
	}
	a.lines = append(a.lines, Line{
		ProductID: c.ProductID,
		Name:      c.Name,
		UnitPrice: c.UnitPrice,
		ImageRef:  c.ImageRef,
		Quantity:  1,
	})
	a.mu.Unlock()
	a.publish()
}

// RemoveItem 按标识移除行项目；标识不存在时为无操作，不是错误
func (a *Aggregator) RemoveItem(productID string) {
	a.mu.Lock()
	changed := false
	kept := a.lines[:0]
	for _, line := range a.lines {
		if line.ProductID == productID {
			changed = true
			continue
		}
		kept = append(kept, line)
	}
	a.lines = kept
	a.mu.Unlock()
	if changed {
		a.publish()
	}
}

// Clear 清空购物车
func (a *Aggregator) Clear() {
	a.mu.Lock()
	a.lines = a.lines[:0]
	a.mu.Unlock()
	a.publish()
}

// Items 返回行项目快照，迭代顺序 = 加入顺序
func (a *Aggregator) Items() []Line {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Line, len(a.lines))
	copy(out, a.lines)
	return out
}

// Len 当前行项目数
func (a *Aggregator) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.lines)
}

// Total 所有行的 单价×数量 之和，空购物车返回 0
// decimal 定点运算保证货币累加不产生浮点漂移
func (a *Aggregator) Total() decimal.Decimal {
	a.mu.RLock()
	defer a.mu.RUnlock()
	total := decimal.Zero
	for _, line := range a.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Watch 订阅购物车快照流（UI 角标等订阅方使用）
func (a *Aggregator) Watch(ctx context.Context) (<-chan []Line, func()) {
	return a.stream.Subscribe(ctx)
}

func (a *Aggregator) publish() {
	a.stream.Publish(a.Items())
}
