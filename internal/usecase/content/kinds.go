package content

import "hotelfront/internal/pkg/config"

// Kind names a content type; its value doubles as the cache key.
type Kind string

const (
	KindHeroBanner    Kind = "heroBanner"
	KindDistinctives  Kind = "distinctives"
	KindCuratedOffers Kind = "curatedOffers"
	KindAboutPage     Kind = "aboutPage"
	KindFacilities    Kind = "facilities"
	KindGallery       Kind = "gallery"
	KindRooms         Kind = "rooms"
	KindMembership    Kind = "membership"
)

var AllKinds = []Kind{
	KindHeroBanner,
	KindDistinctives,
	KindCuratedOffers,
	KindAboutPage,
	KindFacilities,
	KindGallery,
	KindRooms,
	KindMembership,
}

func descriptors(cfg config.ContentConfig) map[Kind]descriptor {
	return map[Kind]descriptor{
		KindHeroBanner: {
			key: string(KindHeroBanner), path: "/content/home/hero-banner", field: "heroBanners",
			ttl: cfg.HomepageTTL, fallback: "Failed to fetch hero banner",
		},
		KindDistinctives: {
			key: string(KindDistinctives), path: "/content/home/distinctives",
			ttl: cfg.HomepageTTL, fallback: "Failed to fetch distinctives",
		},
		KindCuratedOffers: {
			key: string(KindCuratedOffers), path: "/content/home/get-curated-offers",
			ttl: cfg.OffersTTL, fallback: "Failed to fetch offers",
		},
		KindAboutPage: {
			key: string(KindAboutPage), path: "/content/about",
			ttl: cfg.AboutPageTTL, fallback: "Failed to fetch about page",
		},
		KindFacilities: {
			key: string(KindFacilities), path: "/facilities/get-facilities", field: "facilities",
			ttl: cfg.FacilitiesTTL, fallback: "Failed to fetch facilities",
		},
		KindGallery: {
			key: string(KindGallery), path: "/content/gallery", field: "gallery", bareOK: true,
			ttl: cfg.GalleryTTL, fallback: "Failed to fetch gallery",
		},
		KindRooms: {
			key: string(KindRooms), path: "/rooms/get-rooms", field: "rooms",
			ttl: cfg.RoomsTTL, fallback: "Failed to fetch rooms",
		},
		KindMembership: {
			key: string(KindMembership), path: "/membership",
			ttl: cfg.MembershipTTL, fallback: "Failed to fetch membership",
		},
	}
}
