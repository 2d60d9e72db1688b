package composer

import "github.com/dtroode/deckhub-server/internal/model"

const unsplashParams = "?auto=format&fit=crop&w=800&q=80"

func unsplash(id string) string {
	return "https://images.unsplash.com/photo-" + id + unsplashParams
}

// DefaultImages are the image pools per topic.
var DefaultImages = map[model.Topic][]string{
	model.TopicBusiness: {
		unsplash("1507679799987-c73779587ccf"),
		unsplash("1454165804606-c3d57bc86b40"),
		unsplash("1573164574001-518958d9baa2"),
	},
	model.TopicTechnology: {
		unsplash("1518770660439-4636190af475"),
		unsplash("1451187580459-43490279c0fa"),
		unsplash("1496065187959-7f07b8353c55"),
	},
	model.TopicEducation: {
		unsplash("1503676260728-1c00da094a0b"),
		unsplash("1509062522246-3755977927d7"),
		unsplash("1488190211105-8b0e65b80b4e"),
	},
	model.TopicMarketing: {
		unsplash("1533750349088-cd871a92f312"),
		unsplash("1563986768609-322da13575f3"),
		unsplash("1533750516457-a7f992034fec"),
	},
	model.TopicNature: {
		unsplash("1470071459604-3b5ec3a7fe05"),
		unsplash("1501854140801-50d01698950b"),
		unsplash("1441974231531-c6227db76b6e"),
	},
	model.TopicHealth: {
		unsplash("1505576399279-565b52d4ac71"),
		unsplash("1532938911079-1b06ac7ceec7"),
		unsplash("1498837167922-ddd27525d352"),
	},
	model.TopicGeneral: {
		unsplash("1454789548928-9efd52dc4031"),
		unsplash("1579546929518-9e396f3cc809"),
		unsplash("1557672172-298e090bd0f1"),
	},
}

// DefaultStyles is the ordered palette of slide style presets.
var DefaultStyles = []model.SlideStyle{
	{
		BackgroundColor: "#ffffff",
		TextColor:       "#333333",
		FontSize:        model.FontSizeNormal,
		Alignment:       model.AlignLeft,
	},
	{
		Gradient:  "linear-gradient(135deg, #f5f7fa 0%, #c3cfe2 100%)",
		TextColor: "#2d3748",
		FontSize:  model.FontSizeLarge,
		Alignment: model.AlignCenter,
	},
	{
		Gradient:  "linear-gradient(to right, #4facfe 0%, #00f2fe 100%)",
		TextColor: "#ffffff",
		FontSize:  model.FontSizeNormal,
		Alignment: model.AlignLeft,
	},
	{
		BackgroundColor: "#2d3748",
		TextColor:       "#f7fafc",
		FontSize:        model.FontSizeNormal,
		Alignment:       model.AlignCenter,
	},
	{
		Gradient:  "linear-gradient(to top, #a8edea 0%, #fed6e3 100%)",
		TextColor: "#4a5568",
		FontSize:  model.FontSizeLarge,
		Alignment: model.AlignLeft,
	},
	{
		Gradient:  "linear-gradient(to right, #d4fc79 0%, #96e6a1 100%)",
		TextColor: "#2d3748",
		FontSize:  model.FontSizeNormal,
		Alignment: model.AlignCenter,
	},
}
