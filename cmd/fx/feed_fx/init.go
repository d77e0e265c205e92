package feed_fx

import (
	"go.uber.org/fx"

	"danakita/internal/api/controllers"
	"danakita/internal/services"
)

var Module = fx.Provide(
	services.NewDonationFeed,
	provideFeedController,
)

func provideFeedController(feed *services.DonationFeed) *controllers.FeedController {
	return controllers.NewFeedController(feed)
}
