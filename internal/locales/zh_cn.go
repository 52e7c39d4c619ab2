package locales

// Keys missing here resolve through the English bundle.
var simplifiedChinese = Messages{
	"app.title":                  "openGemini Studio",
	"common.save":                "保存",
	"common.cancel":              "取消",
	"common.reset":               "重置",
	"connection.new":             "新建连接",
	"connection.edit":            "编辑连接",
	"connection.delete":          "删除连接",
	"connection.name":            "名称",
	"connection.address":         "地址",
	"connection.enableAuth":      "启用认证",
	"connection.username":        "用户名",
	"connection.password":        "密码",
	"connection.ssh":             "SSH 隧道",
	"query.execute":              "执行",
	"query.executionTime":        "执行耗时",
	"history.title":              "查询历史",
	"history.empty":              "暂无查询记录",
	"settings.title":             "设置",
	"settings.language":          "语言",
	"settings.themeMode":         "主题",
	"settings.themeMode.light":   "浅色",
	"settings.themeMode.dark":    "深色",
	"settings.themeMode.system":  "跟随系统",
	"settings.customFont":        "自定义字体",
	"settings.maxHistoryCount":   "最大历史记录数",
	"settings.dataDirectory":     "数据目录",
	"settings.debug":             "调试模式",
	"settings.resetConfirmation": "确定将所有设置恢复为默认值吗？",
}
