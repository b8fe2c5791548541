package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"yttrends/app/conf"
	"yttrends/app/handlers"
	"yttrends/app/youtube"

	"github.com/NicoNex/echotron/v3"
)

const BotMaxResults = 10

func main() {
	token := os.Getenv("TG_TOKEN")
	if token == "" {
		log.Fatal("no telegram token provided")
	}

	config := conf.ParseConfig()
	ytr := youtube.NewYouTubeRequester(config)

	api := echotron.NewAPI(token)
	for u := range echotron.PollingUpdates(token) {

		if u.Message != nil && strings.HasPrefix(u.Message.Text, "/trends") {

			code := strings.TrimSpace(strings.TrimPrefix(u.Message.Text, "/trends"))
			region, ok := handlers.RegionByCode(strings.ToUpper(code))
			if !ok {
				region = handlers.Regions[0]
			}

			text, err := TrendsText(ytr, region)
			if err != nil {
				log.Println("cannot fetch trends:", err)
				api.SendMessage("동영상을 불러오는 데 실패했습니다 :(", u.ChatID(), nil)
				continue
			}

			markup := GetKeyboard()
			_, err = api.SendMessage(text, u.ChatID(), &echotron.MessageOptions{ReplyMarkup: markup})
			if err != nil {
				fmt.Println("cannot send message:", err)
			}
			continue
		}

		if u.Message != nil && u.Message.Text == "/start" {
			markup := GetKeyboard()
			_, err := api.SendMessage("국가를 선택하세요:", u.ChatID(), &echotron.MessageOptions{ReplyMarkup: markup})
			if err != nil {
				fmt.Println("cannot send message:", err)
			}
			continue
		}

		if u.CallbackQuery != nil && strings.HasPrefix(u.CallbackQuery.Data, "/region") {

			code := strings.TrimPrefix(u.CallbackQuery.Data, "/region")
			region, ok := handlers.RegionByCode(code)
			if !ok {
				log.Println("unknown region:", code)
				continue
			}

			text, err := TrendsText(ytr, region)
			if err != nil {
				log.Println("cannot fetch trends:", err)
				api.SendMessage("동영상을 불러오는 데 실패했습니다 :(", u.ChatID(), nil)
				continue
			}

			_, err = api.SendMessage(text, u.ChatID(), &echotron.MessageOptions{ReplyMarkup: GetKeyboard()})
			if err != nil {
				fmt.Println("cannot send message:", err)
			}
		}
	}
}

func TrendsText(ytr *youtube.YouTubeRequester, region handlers.Region) (string, error) {

	videos, err := ytr.FetchPopularVideos(region.Code, BotMaxResults)
	if err != nil {
		return "", err
	}
	handlers.SortByViews(videos)

	now := time.Now().UTC()

	var b strings.Builder
	b.WriteString(region.Flag + " " + region.Name + " 인기 동영상\n\n")
	for i, video := range videos {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, video.Title))
		b.WriteString(fmt.Sprintf("   %s • 👁️ %s회 • ⏳ %s • ⏱️ %s\n",
			video.Channel,
			youtube.FormatCount(video.Views),
			youtube.FormatPublishedDate(video.PublishedAt, now),
			youtube.FormatDuration(video.Duration),
		))
		b.WriteString("   https://www.youtube.com/watch?v=" + video.ID + "\n\n")
	}

	return b.String(), nil
}

func GetKeyboard() echotron.InlineKeyboardMarkup {

	var rows [][]echotron.InlineKeyboardButton
	row := make([]echotron.InlineKeyboardButton, 0, 5)

	for _, region := range handlers.Regions {
		row = append(row, echotron.InlineKeyboardButton{
			Text:         region.Flag + " " + region.Name,
			CallbackData: "/region" + region.Code,
		})
		if len(row) == 5 {
			rows = append(rows, row)
			row = make([]echotron.InlineKeyboardButton, 0, 5)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return echotron.InlineKeyboardMarkup{InlineKeyboard: rows}
}
