package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product 商品聚合根
//
// 聚合根特征：
// 1. 所有字段私有，通过方法暴露行为
// 2. 标识由存储层在首次持久化时分配（id == 0 表示尚未持久化）
// 3. 图片资源的生命周期与商品绑定：商品删除时资源必须一并清理
type Product struct {
	id        int64
	name      string
	price     decimal.Decimal
	phone     string
	imageRef  string
	favorite  bool
	createdAt time.Time
	updatedAt time.Time
}

// NewProduct 创建新商品实体
// 校验规则：名称与联系电话非空，价格为非负数
// imageRef 允许为空：图片上传完成后通过 ChangeImage 绑定
func NewProduct(name string, price decimal.Decimal, phone, imageRef string) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewInvalidNameError()
	}
	if price.IsNegative() {
		return nil, NewInvalidPriceError(price)
	}
	if strings.TrimSpace(phone) == "" {
		return nil, NewInvalidPhoneError()
	}

	now := time.Now()
	return &Product{
		name:      strings.TrimSpace(name),
		price:     price,
		phone:     strings.TrimSpace(phone),
		imageRef:  imageRef,
		favorite:  false,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ============================================================================
// 领域行为方法
// ============================================================================

// Rename 更新商品名称，名称不能为空
func (p *Product) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewInvalidNameError()
	}
	p.name = strings.TrimSpace(name)
	p.updatedAt = time.Now()
	return nil
}

// ChangePrice 更新商品价格，价格不能为负
func (p *Product) ChangePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return NewInvalidPriceError(price)
	}
	p.price = price
	p.updatedAt = time.Now()
	return nil
}

// ChangePhone 更新联系电话
func (p *Product) ChangePhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return NewInvalidPhoneError()
	}
	p.phone = strings.TrimSpace(phone)
	p.updatedAt = time.Now()
	return nil
}

// ChangeImage 替换图片引用
// 注意：旧图片文件不会在此处回收，见应用层 catalog.Service.Update 的契约说明
func (p *Product) ChangeImage(imageRef string) {
	p.imageRef = imageRef
	p.updatedAt = time.Now()
}

// ToggleFavorite 翻转收藏标记，结果总是先前状态的相反值
func (p *Product) ToggleFavorite() {
	p.favorite = !p.favorite
	p.updatedAt = time.Now()
}

// IsNew 标识尚未持久化（存储层据此区分 Insert 与 Update）
func (p *Product) IsNew() bool { return p.id == 0 }

// AssignIdentity 由仓储在首次插入后回写存储层分配的标识
// ⚠️ 注意：此方法仅应在仓储实现中使用，不应在应用层调用
func (p *Product) AssignIdentity(id int64) { p.id = id }

// ============================================================================
// Getters - 只读访问器
// ============================================================================

func (p *Product) ID() int64              { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Phone() string          { return p.phone }
func (p *Product) ImageRef() string       { return p.imageRef }
func (p *Product) HasImage() bool         { return p.imageRef != "" }
func (p *Product) IsFavorite() bool       { return p.favorite }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }
func (p *Product) UpdatedAt() time.Time   { return p.updatedAt }

// ReconstructionDTO 商品重建数据传输对象
// 仅限于仓储层使用，用于从数据库重建 Product 聚合根
type ReconstructionDTO struct {
	ID        int64
	Name      string
	Price     decimal.Decimal
	Phone     string
	ImageRef  string
	Favorite  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RebuildFromDTO 从 DTO 重建 Product 聚合根
// ⚠️ 注意：此方法仅应在仓储实现中使用，不应在应用层调用
func RebuildFromDTO(dto ReconstructionDTO) *Product {
	return &Product{
		id:        dto.ID,
		name:      dto.Name,
		price:     dto.Price,
		phone:     dto.Phone,
		imageRef:  dto.ImageRef,
		favorite:  dto.Favorite,
		createdAt: dto.CreatedAt,
		updatedAt: dto.UpdatedAt,
	}
}
