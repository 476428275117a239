package main

import (
	"time"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/config"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/logger"
	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/models"
)

func bilingual(en, el string) models.JSON {
	return models.JSON(map[string]interface{}{"en": en, "el": el})
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	now := time.Now()

	categories := []models.PageCategory{
		{
			Slug:         "municipality",
			NameJSON:     bilingual("Municipality", "Δήμος"),
			Icon:         "building",
			IsActive:     true,
			ShowInNavbar: true,
			NavOrder:     1,
			SortOrder:    1,
		},
		{
			Slug:         "services",
			NameJSON:     bilingual("Citizen Services", "Υπηρεσίες Πολιτών"),
			Icon:         "briefcase",
			IsActive:     true,
			ShowInNavbar: true,
			NavOrder:     2,
			SortOrder:    2,
		},
		{
			Slug:         "visitors",
			NameJSON:     bilingual("Visitors", "Επισκέπτες"),
			Icon:         "map",
			IsActive:     true,
			ShowInNavbar: true,
			NavOrder:     3,
			SortOrder:    3,
		},
	}
	for _, cat := range categories {
		var existing models.PageCategory
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	categoryIDs := map[string]uint{}
	var categoryList []models.PageCategory
	if err := models.DB.Where("slug IN ?", []string{"municipality", "services", "visitors"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}
	municipalityID := categoryIDs["municipality"]
	servicesID := categoryIDs["services"]

	subcategories := []models.PageCategory{
		{
			Slug:         "mayor-office",
			NameJSON:     bilingual("Mayor's Office", "Γραφείο Δημάρχου"),
			IsActive:     true,
			ShowInNavbar: true,
			NavOrder:     1,
			SortOrder:    1,
			ParentID:     &municipalityID,
		},
		{
			Slug:         "municipal-council",
			NameJSON:     bilingual("Municipal Council", "Δημοτικό Συμβούλιο"),
			IsActive:     true,
			ShowInNavbar: true,
			NavOrder:     2,
			SortOrder:    2,
			ParentID:     &municipalityID,
		},
	}
	for _, cat := range subcategories {
		var existing models.PageCategory
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create subcategory %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created subcategory: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Subcategory already exists: %s", cat.Slug)
		}
	}

	var mayorOfficeID uint
	var mayorOffice models.PageCategory
	if err := models.DB.Where("slug = ?", "mayor-office").First(&mayorOffice).Error; err == nil {
		mayorOfficeID = mayorOffice.ID
	}

	pages := []models.Page{
		{
			Slug:        "mayor-greeting",
			TitleJSON:   bilingual("Greeting from the Mayor", "Χαιρετισμός Δημάρχου"),
			ExcerptJSON: bilingual("A welcome message from the Mayor.", "Μήνυμα καλωσορίσματος από τον Δήμαρχο."),
			ContentJSON: bilingual(
				"Welcome to the official website of our municipality. Here you will find news, events and all municipal services.",
				"Καλώς ήρθατε στην επίσημη ιστοσελίδα του δήμου μας. Εδώ θα βρείτε νέα, εκδηλώσεις και όλες τις δημοτικές υπηρεσίες.",
			),
			CategoryID:  &mayorOfficeID,
			Layout:      models.PageLayoutDefault,
			IsPublished: true,
		},
		{
			Slug:        "certificates",
			TitleJSON:   bilingual("Certificates and Permits", "Πιστοποιητικά και Άδειες"),
			ExcerptJSON: bilingual("How to apply for municipal certificates.", "Πώς να υποβάλετε αίτηση για δημοτικά πιστοποιητικά."),
			ContentJSON: bilingual(
				"Applications for certificates are accepted at the citizen service desk, Monday to Friday 08:00-14:00.",
				"Οι αιτήσεις για πιστοποιητικά γίνονται δεκτές στο γραφείο εξυπηρέτησης πολιτών, Δευτέρα έως Παρασκευή 08:00-14:00.",
			),
			CategoryID:  &servicesID,
			Layout:      models.PageLayoutSidebar,
			IsPublished: true,
		},
	}
	for _, page := range pages {
		var existing models.Page
		if err := models.DB.Where("slug = ?", page.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&page).Error; err != nil {
				stdLog.Printf("Failed to create page %s: %v", page.Slug, err)
			} else {
				stdLog.Printf("Created page: %s", page.Slug)
			}
		} else {
			stdLog.Printf("Page already exists: %s", page.Slug)
		}
	}

	news := []models.NewsItem{
		{
			Slug:        "new-waste-collection-schedule",
			TitleJSON:   bilingual("New Waste Collection Schedule", "Νέο Πρόγραμμα Αποκομιδής Απορριμμάτων"),
			ExcerptJSON: bilingual("The waste collection schedule changes from next month.", "Το πρόγραμμα αποκομιδής αλλάζει από τον επόμενο μήνα."),
			ContentJSON: bilingual(
				"Starting next month, waste collection moves to early morning hours in all districts.",
				"Από τον επόμενο μήνα, η αποκομιδή απορριμμάτων μεταφέρεται στις πρώτες πρωινές ώρες σε όλες τις γειτονιές.",
			),
			Category:    "announcements",
			Published:   true,
			Featured:    true,
			PublishDate: timePtr(now.Add(-48 * time.Hour)),
		},
		{
			Slug:        "beach-cleanup-volunteers",
			TitleJSON:   bilingual("Volunteers Wanted for Beach Cleanup", "Ζητούνται Εθελοντές για Καθαρισμό Παραλίας"),
			ExcerptJSON: bilingual("Join the coastal cleanup initiative.", "Συμμετέχετε στην πρωτοβουλία καθαρισμού της ακτής."),
			Category:    "community",
			Published:   true,
			PublishDate: timePtr(now.Add(-24 * time.Hour)),
		},
	}
	for _, item := range news {
		var existing models.NewsItem
		if err := models.DB.Where("slug = ?", item.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&item).Error; err != nil {
				stdLog.Printf("Failed to create news %s: %v", item.Slug, err)
			} else {
				stdLog.Printf("Created news: %s", item.Slug)
			}
		} else {
			stdLog.Printf("News already exists: %s", item.Slug)
		}
	}

	events := []models.Event{
		{
			Slug:         "summer-festival",
			TitleJSON:    bilingual("Summer Festival", "Καλοκαιρινό Φεστιβάλ"),
			ExcerptJSON:  bilingual("Music and dance at the seafront.", "Μουσική και χορός στην παραλία."),
			LocationJSON: bilingual("Seafront Park", "Παραλιακό Πάρκο"),
			Category:     "culture",
			Published:    true,
			Featured:     true,
			PublishDate:  timePtr(now.Add(-72 * time.Hour)),
			Date:         timePtr(now.Add(14 * 24 * time.Hour)),
			TimeOfDay:    "19:30",
			EndTime:      "23:00",
		},
		{
			Slug:         "council-open-session",
			TitleJSON:    bilingual("Open Council Session", "Ανοικτή Συνεδρίαση Δημοτικού Συμβουλίου"),
			LocationJSON: bilingual("Town Hall", "Δημαρχείο"),
			Category:     "municipality",
			Published:    true,
			PublishDate:  timePtr(now.Add(-24 * time.Hour)),
			Date:         timePtr(now.Add(7 * 24 * time.Hour)),
			TimeOfDay:    "18:00",
		},
	}
	for _, event := range events {
		var existing models.Event
		if err := models.DB.Where("slug = ?", event.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&event).Error; err != nil {
				stdLog.Printf("Failed to create event %s: %v", event.Slug, err)
			} else {
				stdLog.Printf("Created event: %s", event.Slug)
			}
		} else {
			stdLog.Printf("Event already exists: %s", event.Slug)
		}
	}

	museums := []models.Museum{
		{
			Slug:            "archaeological-museum",
			TitleJSON:       bilingual("Archaeological Museum", "Αρχαιολογικό Μουσείο"),
			DescriptionJSON: bilingual("Finds from the ancient city.", "Ευρήματα από την αρχαία πόλη."),
			LocationJSON:    bilingual("12 Harbour Street", "Οδός Λιμανιού 12"),
			HoursJSON:       bilingual("Tue-Sun 09:00-17:00", "Τρί-Κυρ 09:00-17:00"),
			Accessible:      true,
			Published:       true,
			Featured:        true,
			PublishDate:     timePtr(now.Add(-96 * time.Hour)),
		},
		{
			Slug:            "folk-art-collection",
			TitleJSON:       bilingual("Folk Art Collection", "Συλλογή Λαϊκής Τέχνης"),
			DescriptionJSON: bilingual("Traditional crafts and costumes.", "Παραδοσιακές τέχνες και ενδυμασίες."),
			LocationJSON:    bilingual("Old Town Square", "Πλατεία Παλιάς Πόλης"),
			HoursJSON:       bilingual("Mon-Fri 10:00-15:00", "Δευ-Παρ 10:00-15:00"),
			Published:       true,
			PublishDate:     timePtr(now.Add(-96 * time.Hour)),
		},
	}
	for _, museum := range museums {
		var existing models.Museum
		if err := models.DB.Where("slug = ?", museum.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&museum).Error; err != nil {
				stdLog.Printf("Failed to create museum %s: %v", museum.Slug, err)
			} else {
				stdLog.Printf("Created museum: %s", museum.Slug)
			}
		} else {
			stdLog.Printf("Museum already exists: %s", museum.Slug)
		}
	}

	stdLog.Println("Seed finished")
}
