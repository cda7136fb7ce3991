// Package metrics объявляет Prometheus-метрики бота; отдаются через
// /metrics HTTP-сервера.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vknvl",
		Subsystem: "engine",
		Name:      "sessions_started_total",
		Help:      "Количество созданных сессий.",
	})
	SessionsResumed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vknvl",
		Subsystem: "engine",
		Name:      "sessions_resumed_total",
		Help:      "Количество возобновлений сессий после выбора.",
	})
	SessionsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vknvl",
		Subsystem: "engine",
		Name:      "sessions_failed_total",
		Help:      "Количество сессий, завершившихся ошибкой действия.",
	})
	EventsIgnored = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vknvl",
		Subsystem: "engine",
		Name:      "events_ignored_total",
		Help:      "Входящие сообщения, не совпавшие ни с одним вариантом меню.",
	})
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "vknvl",
		Subsystem: "engine",
		Name:      "active_sessions",
		Help:      "Текущее число активных сессий в реестре.",
	})

	MessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vknvl",
		Subsystem: "vk",
		Name:      "messages_sent_total",
		Help:      "Отправленные текстовые сообщения.",
	})
	AttachmentsSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vknvl",
		Subsystem: "vk",
		Name:      "attachments_sent_total",
		Help:      "Отправленные вложения.",
	})
	MenusSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vknvl",
		Subsystem: "vk",
		Name:      "menus_sent_total",
		Help:      "Отправленные клавиатуры выбора.",
	})
)
