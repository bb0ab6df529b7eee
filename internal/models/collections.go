package models

import "fmt"

// FieldKind определяет тип поля коллекции
type FieldKind string

const (
	// KindText однострочное текстовое поле
	KindText FieldKind = "text"
	// KindLongText многострочное текстовое поле
	KindLongText FieldKind = "longtext"
	// KindEnum поле с фиксированным набором значений
	KindEnum FieldKind = "enum"
	// KindImage URL изображения, заполняется через upload
	KindImage FieldKind = "image"
	// KindVideo URL видео, заполняется через upload
	KindVideo FieldKind = "video"
)

// Field описывает одно поле схемы коллекции
type Field struct {
	Name     string    // имя поля в Item.Fields
	Kind     FieldKind // тип поля
	Options  []string  // допустимые значения для KindEnum
	Required bool      // обязательное поле
}

// Collection описывает одну коллекцию контента back-office.
// Одна generic-схема вместо копипасты per-entity логики: CRUD, формы и
// reorder параметризуются этим описанием.
type Collection struct {
	Name      string  // имя коллекции, совпадает с сегментом пути /api/v1/{name}
	Title     string  // человекочитаемое название для CLI
	Fields    []Field // схема полей
	Orderable bool    // поддерживает ли коллекция ручную сортировку
}

// Field возвращает описание поля по имени
func (c Collection) Field(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Collections реестр всех коллекций back-office.
// Порядок определяет вывод в CLI команде collections.
var Collections = []Collection{
	{
		Name:      "blogs",
		Title:     "Blog posts",
		Orderable: true,
		Fields: []Field{
			{Name: "title", Kind: KindText, Required: true},
			{Name: "short_description", Kind: KindText, Required: true},
			{Name: "description", Kind: KindLongText, Required: true},
			{Name: "category", Kind: KindEnum, Options: []string{"news", "behind-the-scenes", "tutorial", "showcase"}},
			{Name: "image", Kind: KindImage, Required: true},
			{Name: "alt", Kind: KindText},
		},
	},
	{
		Name:      "works",
		Title:     "Work samples",
		Orderable: true,
		Fields: []Field{
			{Name: "title", Kind: KindText, Required: true},
			{Name: "description", Kind: KindLongText, Required: true},
			{Name: "category", Kind: KindEnum, Options: []string{"commercial", "music-video", "documentary", "short-film"}},
			{Name: "video", Kind: KindVideo},
			{Name: "thumbnail", Kind: KindImage, Required: true},
		},
	},
	{
		Name:      "testimonials",
		Title:     "Testimonials",
		Orderable: false,
		Fields: []Field{
			{Name: "author", Kind: KindText, Required: true},
			{Name: "role", Kind: KindText},
			{Name: "quote", Kind: KindLongText, Required: true},
			{Name: "avatar", Kind: KindImage},
		},
	},
	{
		Name:      "faq",
		Title:     "FAQ categories",
		Orderable: true,
		Fields: []Field{
			{Name: "title", Kind: KindText, Required: true},
		},
	},
	{
		Name:      "faqitems",
		Title:     "FAQ items",
		Orderable: true,
		Fields: []Field{
			{Name: "category_id", Kind: KindText, Required: true},
			{Name: "question", Kind: KindText, Required: true},
			{Name: "answer", Kind: KindLongText, Required: true},
		},
	},
	{
		Name:      "pricing",
		Title:     "Pricing packages",
		Orderable: true,
		Fields: []Field{
			{Name: "name", Kind: KindText, Required: true},
			{Name: "price", Kind: KindText, Required: true},
			{Name: "description", Kind: KindLongText},
			{Name: "features", Kind: KindLongText},
		},
	},
	{
		Name:      "members",
		Title:     "Team members",
		Orderable: false,
		Fields: []Field{
			{Name: "name", Kind: KindText, Required: true},
			{Name: "role", Kind: KindText, Required: true},
			{Name: "photo", Kind: KindImage},
			{Name: "bio", Kind: KindLongText},
		},
	},
	{
		Name:      "services",
		Title:     "Services",
		Orderable: true,
		Fields: []Field{
			{Name: "title", Kind: KindText, Required: true},
			{Name: "description", Kind: KindLongText, Required: true},
			{Name: "icon", Kind: KindImage},
		},
	},
	{
		Name:      "header",
		Title:     "Header / intro",
		Orderable: false,
		Fields: []Field{
			{Name: "title", Kind: KindText, Required: true},
			{Name: "subtitle", Kind: KindText},
			{Name: "video", Kind: KindVideo},
			{Name: "cta_text", Kind: KindText},
			{Name: "cta_link", Kind: KindText},
		},
	},
	{
		Name:      "about",
		Title:     "About / story",
		Orderable: false,
		Fields: []Field{
			{Name: "title", Kind: KindText, Required: true},
			{Name: "story", Kind: KindLongText, Required: true},
			{Name: "image", Kind: KindImage},
		},
	},
	{
		Name:      "seo",
		Title:     "SEO metadata",
		Orderable: false,
		Fields: []Field{
			{Name: "page", Kind: KindEnum, Required: true, Options: []string{"home", "works", "pricing", "about", "contact"}},
			{Name: "title", Kind: KindText, Required: true},
			{Name: "description", Kind: KindLongText, Required: true},
			{Name: "keywords", Kind: KindText},
			{Name: "robots", Kind: KindEnum, Options: []string{"index,follow", "noindex,nofollow", "index,nofollow", "noindex,follow"}},
			{Name: "og_image", Kind: KindImage},
		},
	},
}

// CollectionByName возвращает коллекцию из реестра по имени
func CollectionByName(name string) (Collection, error) {
	for _, c := range Collections {
		if c.Name == name {
			return c, nil
		}
	}
	return Collection{}, fmt.Errorf("unknown collection: %s", name)
}
