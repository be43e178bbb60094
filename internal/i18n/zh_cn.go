package i18n

// ZhCNMessages 简体中文消息目录
var ZhCNMessages = map[string]string{
	"header.title":  "任务控制仪表盘",
	"header.status": "系统状态：在线",

	"panel.todo":    "待办事项",
	"panel.time":    "当前时间",
	"panel.date":    "日期",
	"panel.system":  "系统信息",
	"panel.weather": "天气",
	"panel.quote":   "每日名言",
	"panel.fact":    "趣味知识",
	"panel.compass": "指南针",

	"todo.placeholder": "添加新任务...",
	"todo.empty":       "暂无任务！",
	"todo.remaining":   "剩余 %d 项",

	"weather.placeholder": "输入城市...",
	"weather.loading":     "加载中...",
	"weather.error":       "无法获取天气。",
	"weather.city":        "城市：%s",

	"quote.loading":  "加载中...",
	"quote.error":    "无法获取名言。",
	"quote.fallback": "离线名言",

	"system.browser": "客户端",
	"system.os":      "系统",
	"system.screen":  "屏幕",
	"system.uptime":  "运行时长",

	"date.day":          "星期",
	"compass.heading":   "航向",
	"compass.sensor":    "传感器",
	"compass.synthetic": "模拟",

	"day.0": "星期日",
	"day.1": "星期一",
	"day.2": "星期二",
	"day.3": "星期三",
	"day.4": "星期四",
	"day.5": "星期五",
	"day.6": "星期六",

	"key.focus":  "切换焦点",
	"key.submit": "添加 / 设置 / 切换",
	"key.toggle": "切换任务",
	"key.remove": "删除任务",
	"key.up":     "上移",
	"key.down":   "下移",
	"key.help":   "帮助",
	"key.quit":   "退出",

	"help.title": "快捷键",
	"help.body": `# 快捷键

| 按键 | 操作 |
|------|------|
| tab | 切换焦点：任务输入、任务列表、城市输入 |
| enter | 添加任务、设置城市或切换选中任务 |
| space | 切换选中任务 |
| d / delete | 删除选中任务 |
| j / k, ↑ / ↓ | 移动选择 |
| ? | 显示或隐藏帮助 |
| ctrl+c | 退出 |

任务仅在本次会话中保留。`,

	"plain.banner": "任务控制（纯文本模式）。输入 help 查看命令。",
	"plain.help": `命令：
  add <文本>     添加任务
  toggle <n>     切换第 n 个任务
  rm <n>         删除第 n 个任务
  list           列出任务
  city <名称>    切换天气城市
  weather        显示天气
  quote          显示名言
  status         显示时钟、运行时长、指南针与系统信息
  help           显示帮助
  quit           退出`,
	"plain.unknown":      "未知命令：%s",
	"plain.usage":        "用法：%s",
	"plain.bad_index":    "没有第 %s 个任务",
	"plain.added":        "已添加：%s",
	"plain.removed":      "已删除：%s",
	"plain.toggled":      "任务 #%d：%s",
	"plain.done":         "已完成",
	"plain.open":         "未完成",
	"plain.city_pending": "正在获取 %s 的天气...",
	"plain.city_same":    "当前已显示 %s",
	"plain.bye":          "再见。",
}
