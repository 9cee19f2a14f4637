package seed

import (
	"github.com/paulmach/orb"

	"CityNotes-App/internal/domain/model"
)

// referenceCity 初期投入する都市とそのサンプルノート
type referenceCity struct {
	Name        string
	NameArabic  string
	Population  int64
	Area        float64
	Description string
	Boundary    orb.Polygon
	Notes       []model.NoteInput
}

// rect 経度・緯度の範囲から閉じた矩形ポリゴンを作る
func rect(minLng, minLat, maxLng, maxLat float64) orb.Polygon {
	return orb.Polygon{{
		{minLng, minLat},
		{maxLng, minLat},
		{maxLng, maxLat},
		{minLng, maxLat},
		{minLng, minLat},
	}}
}

var referenceCities = []referenceCity{
	{
		Name:        "Cairo",
		NameArabic:  "القاهرة",
		Population:  9500000,
		Area:        606,
		Description: "Cairo is the capital of Egypt and the largest city in the Arab world. It is located on the Nile River and is known for its ancient history, including the Giza Pyramid Complex and the Great Sphinx.",
		Boundary:    rect(31.2357, 29.9844, 31.3557, 30.1244),
		Notes: []model.NoteInput{
			{
				Title:   "Best Museums",
				Content: "The Egyptian Museum and the Grand Egyptian Museum are must-visit attractions in Cairo. They house the world's largest collection of Pharaonic antiquities.",
			},
			{
				Title:   "Transportation Tips",
				Content: "Cairo Metro is the fastest way to navigate the city and avoid traffic congestion. Taxis are abundant but make sure to agree on fare before starting the journey.",
			},
		},
	},
	{
		Name:        "Alexandria",
		NameArabic:  "الإسكندرية",
		Population:  5200000,
		Area:        2679,
		Description: "Alexandria is the second-largest city in Egypt, located on the Mediterranean coast. It was founded by Alexander the Great and was once home to the Lighthouse of Alexandria, one of the Seven Wonders of the Ancient World.",
		Boundary:    rect(29.8216, 31.1656, 30.0816, 31.3256),
		Notes: []model.NoteInput{
			{
				Title:   "Beaches",
				Content: "Montazah Beach and Maamoura Beach are some of the nicest beaches in Alexandria. The sea is particularly beautiful in the early morning.",
			},
		},
	},
	{
		Name:        "Giza",
		NameArabic:  "الجيزة",
		Population:  3628000,
		Area:        1579.75,
		Description: "Giza is the third-largest city in Egypt. It is located on the west bank of the Nile, opposite Cairo. Giza is most famous for the Giza Plateau, which includes the iconic Great Pyramid of Giza, the Sphinx, and other ancient Egyptian monuments.",
		Boundary:    rect(31.08, 29.96, 31.22, 30.08),
	},
	{
		Name:        "Luxor",
		NameArabic:  "الأقصر",
		Population:  506000,
		Area:        416,
		Description: "Luxor is a city on the east bank of the Nile River in southern Egypt. It's known for its ancient monuments, including the Karnak Temple Complex and the Valley of the Kings, a burial site of pharaohs including Tutankhamun.",
		Boundary:    rect(32.63, 25.67, 32.67, 25.71),
		Notes: []model.NoteInput{
			{
				Title:   "Best Time to Visit",
				Content: "October to April is the best time to visit Luxor, as the temperatures are cooler. Summer can be extremely hot with temperatures exceeding 40°C.",
			},
			{
				Title:   "Valley of the Kings",
				Content: "Tickets to the Valley of the Kings include entry to three tombs of your choice. Not all tombs are open at the same time, so check in advance which ones you can visit.",
			},
		},
	},
	{
		Name:        "Aswan",
		NameArabic:  "أسوان",
		Population:  290000,
		Area:        679,
		Description: "Aswan is a city in the south of Egypt, located on the east bank of the Nile. It is known for its beautiful Nile Valley scenery, significant archaeological sites, and its history as the ancient city of Swenett, which was the frontier town of Ancient Egypt facing the south.",
		Boundary:    rect(32.88, 24.07, 32.92, 24.11),
	},
	{
		Name:        "Sharm El Sheikh",
		NameArabic:  "شرم الشيخ",
		Population:  73000,
		Area:        480,
		Description: "Sharm El Sheikh is an Egyptian resort town between the desert of the Sinai Peninsula and the Red Sea. It's known for its sheltered sandy beaches, clear waters and coral reefs. It's a popular diving and snorkeling destination with vibrant marine life.",
		Boundary:    rect(34.32, 27.84, 34.36, 27.88),
	},
}
