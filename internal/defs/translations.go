// internal/defs/translations.go
package defs

// Language - код языка интерфейса.
type Language string

const (
	LangEN Language = "en"
	LangZH Language = "zh"
)

// DefaultLanguage - язык при первом запуске.
const DefaultLanguage = LangZH

// Languages - порядок переключения по кнопке и клавише L.
var Languages = []Language{LangZH, LangEN}

// ParseLanguage возвращает язык по коду или язык по умолчанию.
func ParseLanguage(code string) Language {
	for _, l := range Languages {
		if string(l) == code {
			return l
		}
	}
	return DefaultLanguage
}

// Next - следующий язык по кругу.
func (l Language) Next() Language {
	for i, lang := range Languages {
		if lang == l {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return DefaultLanguage
}

// Translation - все строки интерфейса на одном языке.
type Translation struct {
	Title        string `json:"title"`
	Score        string `json:"score"`
	Missiles     string `json:"missiles"`
	Win          string `json:"win"`
	Loss         string `json:"loss"`
	PlayAgain    string `json:"playAgain"`
	Start        string `json:"start"`
	Instructions string `json:"instructions"`
	VictoryDesc  string `json:"victoryDesc"`
	DefeatDesc   string `json:"defeatDesc"`
	Cities       string `json:"cities"`
	Target       string `json:"target"`
	Paused       string `json:"paused"`
	Resume       string `json:"resume"`
	LanguageName string `json:"languageName"`
}

var builtinTranslations = map[Language]Translation{
	LangEN: {
		Title:        "Inkling Nova Defense",
		Score:        "Score",
		Missiles:     "Missiles",
		Win:          "Mission Accomplished!",
		Loss:         "Defense Failed!",
		PlayAgain:    "Play Again",
		Start:        "Start Game",
		Instructions: "Click anywhere to intercept incoming rockets. Protect your cities!",
		VictoryDesc:  "You have successfully defended the star system.",
		DefeatDesc:   "All missile batteries have been destroyed.",
		Cities:       "Cities",
		Target:       "Target",
		Paused:       "Paused",
		Resume:       "Press P to resume",
		LanguageName: "EN",
	},
	LangZH: {
		Title:        "inkling新星防御",
		Score:        "得分",
		Missiles:     "导弹",
		Win:          "任务成功！",
		Loss:         "防御失败！",
		PlayAgain:    "再玩一次",
		Start:        "开始游戏",
		Instructions: "点击屏幕任何位置发射拦截导弹。保护你的城市！",
		VictoryDesc:  "你成功保卫了星系。",
		DefeatDesc:   "所有导弹发射塔已被摧毁。",
		Cities:       "城市",
		Target:       "目标",
		Paused:       "已暂停",
		Resume:       "按 P 继续",
		LanguageName: "中文",
	},
}

// Catalog - переводы по языкам.
type Catalog map[Language]Translation

// DefaultCatalog - встроенные переводы. Возвращается копия, её можно менять.
func DefaultCatalog() Catalog {
	c := make(Catalog, len(builtinTranslations))
	for lang, t := range builtinTranslations {
		c[lang] = t
	}
	return c
}

// Get возвращает перевод; для неизвестного языка - язык по умолчанию.
func (c Catalog) Get(lang Language) Translation {
	if t, ok := c[lang]; ok {
		return t
	}
	return c[DefaultLanguage]
}
