package mqs

import (
	"context"
	"encoding/json"
	"net"
	"strings"
	"time"

	"link-resolver/common/events"
	"link-resolver/services/analytics-consumer/internal/svc"
	"link-resolver/services/analytics-consumer/model"

	"github.com/google/uuid"
	"github.com/mssola/useragent"
	"github.com/samber/lo"
	"github.com/zeromicro/go-zero/core/logx"
)

// clickEventNamespace namespaces the UUIDv5 ids derived from raw
// payloads for events the producer did not assign an id to.
var clickEventNamespace = uuid.MustParse("9ad171a4-6b83-46b2-8f2f-6d4e7a2b9c01")

// ClickEventConsumer processes one queue message per call. Returning nil
// completes the message (the offset is committed); returning an error
// abandons it for queue-level redelivery. Payloads that can never
// succeed are dead-lettered and completed so they cannot poison the
// partition.
type ClickEventConsumer struct {
	svcCtx *svc.ServiceContext
}

func NewClickEventConsumer(ctx context.Context, svcCtx *svc.ServiceContext) *ClickEventConsumer {
	return &ClickEventConsumer{
		svcCtx: svcCtx,
	}
}

func (c *ClickEventConsumer) Consume(ctx context.Context, key, val string) error {
	logx.WithContext(ctx).Infof("ClickEventConsumer received: key=%s", key)

	var event events.ClickEvent
	if err := json.Unmarshal([]byte(val), &event); err != nil {
		logx.WithContext(ctx).Errorf("malformed click event, dead-lettering: %v", err)
		c.deadLetter(ctx, val, "malformed payload: "+err.Error())
		return nil
	}
	if event.ShortCode == "" {
		logx.WithContext(ctx).Error("click event missing short_code, dead-lettering")
		c.deadLetter(ctx, val, "missing short_code")
		return nil
	}

	// The producer omits the id; derive one from the raw payload so a
	// message redelivered after a successful insert but before its
	// offset commit maps to the same document and the upsert converges.
	id := event.Id
	if id == "" {
		id = uuid.NewSHA1(clickEventNamespace, []byte(val)).String()
	}

	countryCode := resolveCountry(c.svcCtx, event.IpAddress)
	deviceType := resolveDeviceType(event.UserAgent)
	trafficSource := resolveTrafficSource(event.Referer)

	clickedAt := time.Unix(event.Timestamp, 0)

	_, insertErr := c.svcCtx.EventModel.Insert(ctx, &model.ClickEvents{
		Id:            id,
		ShortCode:     event.ShortCode,
		OriginalUrl:   event.OriginalUrl,
		ClickedAt:     clickedAt,
		UserAgent:     event.UserAgent,
		IpAddress:     event.IpAddress,
		Referer:       event.Referer,
		CountryCode:   countryCode,
		DeviceType:    deviceType,
		TrafficSource: trafficSource,
	})
	if insertErr != nil {
		// The upsert already absorbs redelivered ids; this guards other
		// unique violations the same way.
		if strings.Contains(insertErr.Error(), "duplicate key") {
			logx.WithContext(ctx).Infof("duplicate click event, skipping: short_code=%s", event.ShortCode)
			return nil
		}
		logx.WithContext(ctx).Errorf("failed to insert click event, abandoning for redelivery: %v", insertErr)
		return insertErr
	}

	logx.WithContext(ctx).Infow("click event processed",
		logx.Field("short_code", event.ShortCode),
		logx.Field("id", id),
		logx.Field("country", countryCode),
		logx.Field("device", deviceType),
		logx.Field("source", trafficSource),
	)

	return nil
}

// deadLetterMessage wraps an unprocessable payload for the dead-letter
// topic so on-call can replay or inspect it later.
type deadLetterMessage struct {
	Reason   string `json:"reason"`
	Payload  string `json:"payload"`
	FailedAt int64  `json:"failed_at"`
}

func (c *ClickEventConsumer) deadLetter(ctx context.Context, payload, reason string) {
	if c.svcCtx.DlqPusher == nil {
		return
	}

	body, err := json.Marshal(deadLetterMessage{
		Reason:   reason,
		Payload:  payload,
		FailedAt: time.Now().Unix(),
	})
	if err != nil {
		logx.WithContext(ctx).Errorf("failed to marshal dead-letter message: %v", err)
		return
	}

	if err := c.svcCtx.DlqPusher.Push(ctx, string(body)); err != nil {
		logx.WithContext(ctx).Errorf("failed to push dead-letter message: %v", err)
	}
}

// resolveCountry looks up the country code from IP using GeoIP database.
// Falls back to "XX" if GeoIP is unavailable or lookup fails.
func resolveCountry(svcCtx *svc.ServiceContext, ip string) string {
	if svcCtx.GeoDB == nil || ip == "" {
		return "XX"
	}

	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return "XX"
	}

	record, err := svcCtx.GeoDB.Country(parsedIP)
	if err != nil {
		return "XX"
	}

	code := record.Country.IsoCode
	if code == "" {
		return "XX"
	}

	return code
}

// resolveDeviceType parses the User-Agent string to determine device type.
func resolveDeviceType(ua string) string {
	if ua == "" {
		return "Unknown"
	}

	parsed := useragent.New(ua)

	if parsed.Bot() {
		return "Bot"
	}

	if parsed.Mobile() {
		return "Mobile"
	}

	// useragent library doesn't have Tablet detection, treat as Desktop
	return "Desktop"
}

var (
	searchEngines  = []string{"google.", "bing.", "yahoo.", "duckduckgo.", "baidu.", "yandex."}
	socialNetworks = []string{"facebook.", "twitter.", "t.co", "linkedin.", "reddit.", "instagram.", "youtube.", "tiktok."}
)

// resolveTrafficSource categorizes the referer into traffic source types.
func resolveTrafficSource(referer string) string {
	if referer == "" {
		return "Direct"
	}

	refLower := strings.ToLower(referer)

	if lo.ContainsBy(searchEngines, func(engine string) bool {
		return strings.Contains(refLower, engine)
	}) {
		return "Search"
	}

	if lo.ContainsBy(socialNetworks, func(social string) bool {
		return strings.Contains(refLower, social)
	}) {
		return "Social"
	}

	return "Referral"
}
